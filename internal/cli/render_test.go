package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderWritesSchematic(t *testing.T) {
	out := filepath.Join(t.TempDir(), "picture.svg")

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewRenderCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	require.NoError(t, cmd.Flags().Set("output", out))

	err := cmd.Execute()
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "Saved image to "+out+".")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `<svg xmlns="http://www.w3.org/2000/svg"`)
	assert.Contains(t, string(data), `class="magnet"`)
	assert.Contains(t, string(data), `class="central-ray"`)
}

func TestRenderJSON(t *testing.T) {
	out := filepath.Join(t.TempDir(), "picture.svg")

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "json"}
	cmd := NewRenderCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	require.NoError(t, cmd.Flags().Set("output", out))

	err := cmd.Execute()
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestRenderWithOverlay(t *testing.T) {
	dir := t.TempDir()
	overlay := filepath.Join(dir, "tweaks.yaml")
	require.NoError(t, os.WriteFile(overlay, []byte("p_drift_pre_aperture: 0.25\n"), 0o644))
	out := filepath.Join(dir, "picture.svg")

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewRenderCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	require.NoError(t, cmd.Flags().Set("output", out))
	require.NoError(t, cmd.Flags().Set("params", overlay))

	err := cmd.Execute()
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	// The shortened first drift moves the aperture plane to x = 0.40.
	assert.Contains(t, string(data), `M0.400000,0.135000 L0.400000,0.165000`)
}

func TestRenderMissingOverlayFile(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewRenderCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	require.NoError(t, cmd.Flags().Set("params", filepath.Join(t.TempDir(), "absent.yaml")))

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestRenderInvalidOverlayValue(t *testing.T) {
	dir := t.TempDir()
	overlay := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(overlay, []byte("p_dipole_field: 0\n"), 0o644))

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewRenderCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	require.NoError(t, cmd.Flags().Set("params", overlay))
	require.NoError(t, cmd.Flags().Set("output", filepath.Join(dir, "out.svg")))

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, buf.String(), "INVALID_PARAMETER")
	assert.Contains(t, buf.String(), "p_dipole_field")
}

func TestRenderUnwritableOutput(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewRenderCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	require.NoError(t, cmd.Flags().Set("output", filepath.Join(t.TempDir(), "no", "such", "dir", "out.svg")))

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
