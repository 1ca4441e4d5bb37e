package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func requireOrdered(t *testing.T, text string, markers ...string) {
	t.Helper()
	last := -1
	for _, m := range markers {
		idx := strings.Index(text, m)
		require.GreaterOrEqual(t, idx, 0, "missing %q in:\n%s", m, text)
		require.Greater(t, idx, last, "%q out of order in:\n%s", m, text)
		last = idx
	}
}

func TestCorrectLayoutExpandsGRPCHeader(t *testing.T) {
	got := correctLayout("Version = 5\n[server.grpc]\nAddress = \"x\"\n")
	require.Equal(t,
		"Version = 5\n[server]\n[server.http]\n[server.grpc]\nAddress = \"x\"\n\n[logging]\n\n[recognizer]\n\n[storage]\n",
		got)
}

func TestCorrectLayoutDoesNotRepeatHeaders(t *testing.T) {
	in := strings.Join([]string{
		"[server]",
		"[server.http]",
		"[server.http.api]",
		`Address = "a"`,
		"[server.grpc]",
		"[logging]",
		"EnableDebug = true",
		"[[models]]",
		`ID = "m"`,
	}, "\n")

	got := correctLayout(in)
	for _, h := range []string{"[server]", "[server.http]", "[server.grpc]", "[logging]"} {
		require.Equal(t, 1, strings.Count(got, h+"\n"), h)
	}
	require.True(t, strings.HasSuffix(got, "[recognizer]\n\n[storage]\n"))
}

func TestRenderLayoutForDefaults(t *testing.T) {
	text, err := Render(Default())
	require.NoError(t, err)

	requireOrdered(t, text, "[server]\n", "[server.http]\n", "[server.grpc]\n", "[license]\n")
	require.True(t, strings.HasSuffix(text, "[logging]\n\n[recognizer]\n\n[storage]\n"), text)
}

func TestRenderLayoutWithPopulatedSections(t *testing.T) {
	text, err := Render(fullConfig())
	require.NoError(t, err)

	requireOrdered(t, text, "[server]\n", "[server.http]\n", "[server.http.api]\n", "[server.grpc]\n")
	requireOrdered(t, text, "[[models]]\n", "[logging]\n", "[recognizer]\n", "[storage]\n")
	for _, h := range []string{"[server]\n", "[server.http]\n", "[logging]\n", "[recognizer]\n", "[storage]\n"} {
		require.Equal(t, 1, strings.Count(text, h), h)
	}
}

func TestRenderedTextDecodes(t *testing.T) {
	text, err := Render(Default())
	require.NoError(t, err)

	cfg, err := Load(text, nil, nil)
	require.NoError(t, err)
	require.NotNil(t, cfg.Server.HTTP)
	require.NotNil(t, cfg.Logging)
	require.NotNil(t, cfg.Recognizer)
	require.NotNil(t, cfg.Storage)
	require.Equal(t, DefaultVersion, cfg.Version)
}
