// SPDX-FileCopyrightText: © 2026 The rlx authors <https://github.com/golangee/rlx/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/golangee/rlx"
	"github.com/golangee/rlx/encoder"
	"github.com/golangee/rlx/internal/config"
	"github.com/stretchr/testify/require"
)

type result struct {
	stdout string
	stderr string
	err    error
}

// execute runs the command line like Execute but captures all streams.
func execute(t *testing.T, stdin string, args ...string) result {
	t.Helper()

	// keep configuration files of the machine out of the tests
	t.Setenv(config.EnvConfig, "")
	t.Setenv("HOME", t.TempDir())

	var stdout, stderr bytes.Buffer

	root := NewRootCmd()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&stdout)
	root.SetErr(&stderr)

	err := root.Execute()
	if err != nil {
		printError(&stderr, err)
	}

	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestParseFile(t *testing.T) {
	path := writeFile(t, "list.rules", "list := item+\nitem := $Name\n")

	for _, args := range [][]string{{path}, {"parse", path}} {
		res := execute(t, "", args...)
		require.NoError(t, res.err)
		require.Empty(t, res.stderr)

		lines := strings.Split(res.stdout, "\n")
		require.Equal(t, "list := item+", lines[0])
		require.Contains(t, res.stdout, "item := $Name\n")
		require.Contains(t, res.stdout, "Var $Name 2:9")
	}
}

func TestParseJSON(t *testing.T) {
	path := writeFile(t, "list.rules", "list := item (Comma item)*")

	res := execute(t, "", "parse", "--format", "json", path)
	require.NoError(t, res.err)

	var nodes []encoder.Node
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &nodes))
	require.Len(t, nodes, 1)
	require.Equal(t, "list", nodes[0].Value)
	require.Equal(t, encoder.TypeSequence, nodes[0].Children[0].Type)
}

func TestParseErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "absent.rules")

		res := execute(t, "", path)

		var fileErr *rlx.FileError
		require.ErrorAs(t, res.err, &fileErr)
		require.True(t, strings.HasPrefix(res.stderr, "Error reading file \""+path+"\":\n"), res.stderr)
	})

	t.Run("syntax", func(t *testing.T) {
		path := writeFile(t, "broken.rules", "a := (b")

		res := execute(t, "", path)
		require.Error(t, res.err)
		require.Equal(t, "Error: expected RightParen, got EOF at line 1 col 8\n"+
			path+":1:8\n"+
			"  |\n"+
			"1 |a := (b\n"+
			"  |       ^~~~ expected RightParen, got EOF\n", res.stderr)
	})

	t.Run("lexical", func(t *testing.T) {
		path := writeFile(t, "broken.rules", "a := b\n  # c")

		res := execute(t, "", "parse", path)
		require.Error(t, res.err)
		require.Contains(t, res.stderr, "Error: unexpected character '#' at line 2 col 3\n")
		require.Contains(t, res.stderr, "2 |  # c\n")
	})

	t.Run("usage", func(t *testing.T) {
		res := execute(t, "", "a.rules", "b.rules")
		require.ErrorIs(t, res.err, errUsage)
		require.Equal(t, usage+"\n", res.stderr)
	})

	t.Run("format", func(t *testing.T) {
		path := writeFile(t, "list.rules", "a := b")

		res := execute(t, "", "--format", "html", path)
		require.ErrorIs(t, res.err, config.ErrInvalid)
		require.Empty(t, res.stdout)
	})
}

func TestTokens(t *testing.T) {
	path := writeFile(t, "a.rules", "a := $b")

	res := execute(t, "", "tokens", path)
	require.NoError(t, res.err)
	require.Equal(t, `Identifier "a" - 1:1
WS " " - 1:2
Assign ":=" - 1:3
WS " " - 1:5
Var "$b" - 1:6
EOF "" - 1:8
`, res.stdout)
}

func TestTokensScript(t *testing.T) {
	path := writeFile(t, "point.src", "struct Point {}")

	res := execute(t, "", "tokens", "--lexicon", "script", path)
	require.NoError(t, res.err)
	require.True(t, strings.HasPrefix(res.stdout, `Keyword "struct" - 1:1`+"\n"), res.stdout)
	require.Contains(t, res.stdout, `CapitalIdentifier "Point" - 1:8`)
	require.Contains(t, res.stdout, `RightBrace "}" - 1:15`)

	res = execute(t, "", "tokens", "--lexicon", "c", path)
	require.ErrorIs(t, res.err, config.ErrInvalid)
}

func TestREPL(t *testing.T) {
	for _, args := range [][]string{nil, {"repl"}} {
		res := execute(t, "a := b\nc := (\n:e\n", args...)
		require.NoError(t, res.err)
		require.True(t, strings.HasPrefix(res.stdout, "> a := b\n"), res.stdout)
		require.Contains(t, res.stdout, "> Error: expected Var or Identifier or LeftParen, got EOF at line 1 col 7\n")
		require.True(t, strings.HasSuffix(res.stdout, "> exit\n"), res.stdout)
	}
}

func TestREPLTokens(t *testing.T) {
	res := execute(t, "x\n:e\n", "repl", "--tokens")
	require.NoError(t, res.err)
	require.Equal(t, "> Identifier \"x\" - 1:1\nEOF \"\" - 1:2\n> exit\n", res.stdout)
}

func TestConfigFile(t *testing.T) {
	cfg := writeFile(t, "rlx.toml", `
[output]
format = "json"

[repl]
prompt = "rlx> "
exit_command = "quit"
`)

	res := execute(t, "a := b\nQUIT\n", "--config", cfg)
	require.NoError(t, res.err)
	require.True(t, strings.HasPrefix(res.stdout, "rlx> [\n"), res.stdout)
	require.True(t, strings.HasSuffix(res.stdout, "rlx> exit\n"), res.stdout)

	// flags win over the file
	path := writeFile(t, "a.rules", "a := b")
	res = execute(t, "", "--config", cfg, "--format", "text", path)
	require.NoError(t, res.err)
	require.True(t, strings.HasPrefix(res.stdout, "a := b\n"), res.stdout)
}

func TestConfigFromEnv(t *testing.T) {
	cfg := writeFile(t, "rlx.toml", "[repl]\nprompt = \"env> \"\n")

	var stdout bytes.Buffer
	t.Setenv(config.EnvConfig, cfg)

	root := NewRootCmd()
	root.SetArgs([]string{"repl"})
	root.SetIn(strings.NewReader(":e\n"))
	root.SetOut(&stdout)
	root.SetErr(&bytes.Buffer{})

	require.NoError(t, root.Execute())
	require.Equal(t, "env> exit\n", stdout.String())
}

func TestRequiredVersion(t *testing.T) {
	cfg := writeFile(t, "rlx.toml", `required_version = "99.0.0"`)

	res := execute(t, ":e\n", "--config", cfg)
	require.ErrorIs(t, res.err, config.ErrVersion)
	require.Contains(t, res.stderr, "requires rlx v99.0.0")

	// the version is still printable
	res = execute(t, "", "--config", cfg, "version")
	require.NoError(t, res.err)
	require.True(t, strings.HasPrefix(res.stdout, "rlx v"+Version+"\n"), res.stdout)
}

func TestVerbose(t *testing.T) {
	path := writeFile(t, "a.rules", "a := b")

	res := execute(t, "", "-v", path)
	require.NoError(t, res.err)
	require.Contains(t, res.stderr, "level=DEBUG")
	require.Contains(t, res.stderr, "rules=1")

	res = execute(t, "", path)
	require.NoError(t, res.err)
	require.Empty(t, res.stderr)
}
