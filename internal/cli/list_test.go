package cli

import (
	"bytes"
	"context"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/mrlokans/nameboard/internal/config"
	"github.com/mrlokans/nameboard/internal/entities"
	"github.com/mrlokans/nameboard/internal/namesapi/namesapitest"
)

func seededServer(t *testing.T) *namesapitest.Server {
	return namesapitest.NewServer(t,
		entities.Name{FirstName: "Bob"},
		entities.Name{FirstName: "alice", Liked: true},
		entities.Name{FirstName: "Ann"},
	)
}

func TestListCommand_Text(t *testing.T) {
	srv := seededServer(t)

	root := NewRootCommand("test", "abc123")
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"list", "--url", srv.NamesURL()})

	require.NoError(t, root.ExecuteContext(context.Background()))
	assert.Equal(t, "A\n  alice ♥\n  Ann\nB\n  Bob\n", out.String())
}

func TestListCommand_Empty(t *testing.T) {
	srv := namesapitest.NewServer(t)

	var out bytes.Buffer
	cmd := &ListCommand{URL: srv.NamesURL(), Format: formatText}
	require.NoError(t, cmd.Run(context.Background(), config.NewConfig(), &out))
	assert.Equal(t, "No names.\n", out.String())
}

func TestListCommand_Markdown(t *testing.T) {
	srv := seededServer(t)

	var out bytes.Buffer
	cmd := &ListCommand{URL: srv.NamesURL(), Format: formatMarkdown}
	require.NoError(t, cmd.Run(context.Background(), config.NewConfig(), &out))

	assert.Contains(t, out.String(), "total: 3")
	assert.Contains(t, out.String(), "## A\n\n- [x] alice\n- [ ] Ann\n")
	assert.Contains(t, out.String(), "## B\n\n- [ ] Bob\n")
}

func TestListCommand_XLSX(t *testing.T) {
	srv := seededServer(t)
	path := filepath.Join(t.TempDir(), "names.xlsx")

	var out bytes.Buffer
	cmd := &ListCommand{URL: srv.NamesURL(), Format: formatXLSX, Output: path}
	require.NoError(t, cmd.Run(context.Background(), config.NewConfig(), &out))
	assert.Equal(t, "Exported 3 names in 2 groups to "+path+"\n", out.String())

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Names")
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"B", "Bob"}, rows[3][:2])
}

func TestListCommand_Errors(t *testing.T) {
	srv := seededServer(t)

	t.Run("xlsx without output", func(t *testing.T) {
		cmd := &ListCommand{URL: srv.NamesURL(), Format: formatXLSX}
		err := cmd.Run(context.Background(), config.NewConfig(), &bytes.Buffer{})
		assert.ErrorContains(t, err, "--output")
		assert.Empty(t, srv.Requests())
	})

	t.Run("unknown format", func(t *testing.T) {
		cmd := &ListCommand{URL: srv.NamesURL(), Format: "csv"}
		err := cmd.Run(context.Background(), config.NewConfig(), &bytes.Buffer{})
		assert.ErrorContains(t, err, `unknown format "csv"`)
	})

	t.Run("api failure", func(t *testing.T) {
		srv.FailWith(http.StatusServiceUnavailable)
		defer srv.FailWith(0)

		cmd := &ListCommand{URL: srv.NamesURL(), Format: formatText}
		err := cmd.Run(context.Background(), config.NewConfig(), &bytes.Buffer{})
		assert.ErrorContains(t, err, "fetch names")
	})
}

func TestRootCommand(t *testing.T) {
	root := NewRootCommand("1.2.3", "abc123")

	assert.Equal(t, "1.2.3 (abc123)", root.Version)
	for _, name := range []string{"serve", "api", "tui", "list"} {
		sub, _, err := root.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, sub.Name())
	}

	api, _, err := root.Find([]string{"api"})
	require.NoError(t, err)
	assert.NotNil(t, api.Flags().Lookup("seed"))
	assert.NotNil(t, api.Flags().Lookup("db"))
}
