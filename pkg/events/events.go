// Package events defines the in-process mutation events published by the
// graph stores.
package events

// FlowchartTopic is the watermill topic for decision-flowchart mutations.
const FlowchartTopic = "procesflow.flowchart.mutations"

// EventTypeMetadataKey carries the event type on a message.
const EventTypeMetadataKey = "event_type"

// EventType identifies a mutation event.
type EventType string

// FlowchartMutatedEvent signals that the live decision graph changed and the
// active flowchart (if any) should be persisted.
const FlowchartMutatedEvent EventType = "flowchart.mutated"

// FlowchartMutated is published after every node/edge mutation on the
// decision store. FlowchartID is empty when no flowchart is active; such
// events are dropped by the autosaver.
type FlowchartMutated struct {
	FlowchartID string `json:"flowchart_id"`
}
