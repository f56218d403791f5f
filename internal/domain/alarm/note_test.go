package alarm

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// TestNoteClone verifies that Clone returns a copy and handles nil.
func TestNoteClone(t *testing.T) {
	t.Parallel()
	require.Nil(t, (*Note)(nil).Clone())

	n := &Note{
		RecordID:  uuid.New(),
		Timestamp: 1234,
		User:      "operator",
		Text:      "filter replaced",
	}

	c := n.Clone()
	require.Equal(t, n, c)
	require.NotSame(t, n, c)
}
