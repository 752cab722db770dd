package actions

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestShowVersion(t *testing.T) {
	var out strings.Builder

	deps := actionDependencies{
		Printf: func(format string, a ...any) (int, error) {
			s := fmt.Sprintf(format, a...)
			out.WriteString(s)
			return len(s), nil
		},
		Version: func() string { return "v1.2.3" },
	}

	err := showVersion(nil, nil, deps)
	require.NoError(t, err)
	require.Equal(t, "cmdtree version v1.2.3\n", out.String())
}
