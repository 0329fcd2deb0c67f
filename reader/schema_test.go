package reader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveColumns(t *testing.T) {
	tests := []struct {
		name    string
		header  []string
		labels  []string
		want    Columns
		wantErr string
	}{
		{
			name:   "same order",
			header: []string{"pdes", "name", "diameter", "pha"},
			labels: NEOLabels,
			want:   Columns{0, 1, 2, 3},
		},
		{
			name:   "shuffled with extras",
			header: []string{"id", "pha", "diameter", "name", "pdes"},
			labels: NEOLabels,
			want:   Columns{4, 3, 2, 1},
		},
		{
			name:   "duplicate header uses first",
			header: []string{"des", "cd", "des", "dist", "v_rel"},
			labels: ApproachLabels,
			want:   Columns{0, 1, 3, 4},
		},
		{
			name:    "case sensitive",
			header:  []string{"PDES", "name", "diameter", "pha"},
			labels:  NEOLabels,
			wantErr: "pdes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveColumns("src", tt.header, tt.labels)
			if tt.wantErr != "" {
				var schemaErr *SchemaError
				require.ErrorAs(t, err, &schemaErr)
				assert.Equal(t, tt.wantErr, schemaErr.Label)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestColumns_Width(t *testing.T) {
	assert.Equal(t, 5, Columns{4, 0, 2}.Width())
	assert.Equal(t, 0, Columns{}.Width())
}

func TestProject(t *testing.T) {
	cols := Columns{2, 0}

	got, err := Project(cols, "src", 1, []string{"a", "b", "c"})
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a"}, got)

	_, err = Project(cols, "src", 7, []string{"a", "b"})
	var rowErr *MalformedRowError
	require.ErrorAs(t, err, &rowErr)
	assert.Equal(t, 7, rowErr.Row)
	assert.Equal(t, 3, rowErr.Want)
	assert.Equal(t, 2, rowErr.Got)
}
