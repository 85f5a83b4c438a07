package insights

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeMetricGroupsFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "metric_groups.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestLoadMetricGroups(t *testing.T) {
	path := writeMetricGroupsFile(t, `{
		"io_metrics": [
			{"name": "total_iops", "unit": "ops/s"},
			{"name": "read_iops"},
			{"name": ""}
		],
		"capacity_metrics": []
	}`)

	groups, err := LoadMetricGroups(path)
	require.NoError(t, err)

	require.Equal(t, []string{"total_iops", "read_iops"}, groups.Names(GroupIORate))
	require.Empty(t, groups.Names(GroupCapacity))
	require.Empty(t, groups.Names("unknown_group"))
}

func TestLoadMetricGroupsMissingFile(t *testing.T) {
	_, err := LoadMetricGroups(filepath.Join(t.TempDir(), "absent.json"))
	require.ErrorContains(t, err, "read metric groups file")
}

func TestLoadMetricGroupsMalformed(t *testing.T) {
	path := writeMetricGroupsFile(t, `["not", "an", "object"]`)

	_, err := LoadMetricGroups(path)
	require.ErrorContains(t, err, "decode metric groups file")
}

func TestMetricGroupsNamesReturnsCopy(t *testing.T) {
	path := writeMetricGroupsFile(t, `{"io_metrics": [{"name": "total_iops"}]}`)

	groups, err := LoadMetricGroups(path)
	require.NoError(t, err)

	names := groups.Names(GroupIORate)
	names[0] = "mutated"
	require.Equal(t, []string{"total_iops"}, groups.Names(GroupIORate))
}

func TestEmptyMetricGroups(t *testing.T) {
	groups := EmptyMetricGroups()
	require.Empty(t, groups.Names(GroupIORate))
}
