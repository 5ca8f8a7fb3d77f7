package store

import (
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vgnl/procesflow/pkg/persistence"
	"github.com/vgnl/procesflow/pkg/persistence/file"
)

func newAutosaveFixture(t *testing.T, debounce time.Duration) (*DecisionStore, persistence.Persistence) {
	t.Helper()

	p := file.NewPersistence(t.TempDir(), testLogger())
	pubsub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})

	s := NewDecisionStore(p, pubsub, testLogger())

	autosaver := NewAutosaver(s, p, pubsub, testLogger(), debounce)
	require.NoError(t, autosaver.Start(t.Context()))

	t.Cleanup(func() {
		autosaver.Close()
		_ = pubsub.Close()
	})

	return s, p
}

func TestAutosaver_PersistsAfterMutation(t *testing.T) {
	s, p := newAutosaveFixture(t, 20*time.Millisecond)

	s.AddNode(decisionNode("n1"))
	flowchart := s.SaveFlowchartAs(t.Context(), "Actief", "")

	s.AddNode(decisionNode("n2"))

	require.Eventually(t, func() bool {
		stored, err := p.Flowcharts().GetByID(t.Context(), flowchart.ID)

		return err == nil && len(stored.Nodes) == 2
	}, 2*time.Second, 10*time.Millisecond)
}

func TestAutosaver_DebouncesBursts(t *testing.T) {
	s, p := newAutosaveFixture(t, 50*time.Millisecond)

	flowchart := s.SaveFlowchartAs(t.Context(), "Actief", "")

	// A burst of mutations collapses into one write carrying the final state.
	for _, id := range []string{"n1", "n2", "n3", "n4"} {
		s.AddNode(decisionNode(id))
	}

	require.Eventually(t, func() bool {
		stored, err := p.Flowcharts().GetByID(t.Context(), flowchart.ID)

		return err == nil && len(stored.Nodes) == 4
	}, 2*time.Second, 10*time.Millisecond)
}

func TestAutosaver_DropsStaleFlush(t *testing.T) {
	s, p := newAutosaveFixture(t, 50*time.Millisecond)

	s.AddNode(decisionNode("n1"))
	flowchart := s.SaveFlowchartAs(t.Context(), "Actief", "")

	// Mutate, then leave the document before the debounce elapses.
	s.AddNode(decisionNode("n2"))
	s.CreateNewFlowchart()

	time.Sleep(150 * time.Millisecond)

	stored, err := p.Flowcharts().GetByID(t.Context(), flowchart.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Nodes, 1)
}

func TestAutosaver_KeepsDescriptionAndCreationDate(t *testing.T) {
	s, p := newAutosaveFixture(t, 20*time.Millisecond)

	s.AddNode(decisionNode("n1"))
	flowchart := s.SaveFlowchartAs(t.Context(), "Actief", "Met toelichting")

	created := flowchart.AanmaakDatum
	require.False(t, created.IsZero())

	s.AddNode(decisionNode("n2"))

	require.Eventually(t, func() bool {
		stored, err := p.Flowcharts().GetByID(t.Context(), flowchart.ID)

		return err == nil && len(stored.Nodes) == 2
	}, 2*time.Second, 10*time.Millisecond)

	stored, err := p.Flowcharts().GetByID(t.Context(), flowchart.ID)
	require.NoError(t, err)
	assert.Equal(t, "Met toelichting", stored.Beschrijving)
	assert.True(t, stored.AanmaakDatum.Equal(created))
}
