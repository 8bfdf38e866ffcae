package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/AntonioJCosta/adbkey/internal/adapters/oscommand"
	"github.com/AntonioJCosta/adbkey/internal/core/domain/keytransfer"
	"github.com/AntonioJCosta/adbkey/internal/core/ports"
	"github.com/AntonioJCosta/adbkey/internal/core/services/keyextraction"
	"github.com/AntonioJCosta/adbkey/internal/core/testutil"
	"github.com/AntonioJCosta/adbkey/internal/repositories/settings"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

var defaultTestSettings = keytransfer.Settings{
	BridgeTool: "adb",
	RemotePath: "/data/misc/adb/adb_key",
	LocalPath:  "adbkey",
}

func staticSettings(s keytransfer.Settings) SettingsProviderFactory {
	return func(string) ports.SettingsProvider {
		return &testutil.MockSettingsProvider{
			GetSettingsFunc:         func() (keytransfer.Settings, error) { return s, nil },
			GetSourceIdentifierFunc: func() string { return "Built-in defaults" },
		}
	}
}

func serviceFactory(svc ports.KeyExtractionService) ExtractionServiceFactory {
	return func(ports.Logger) ports.KeyExtractionService { return svc }
}

func executeRoot(t *testing.T, root *Root, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand("test", root.extraction, root.settings)
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	// A nil slice would make cobra fall back to os.Args.
	cmd.SetArgs(append([]string{}, args...))
	err := cmd.Execute()
	return out.String(), err
}

// Root bundles the factories handed to NewRootCommand in a test.
type Root struct {
	extraction ExtractionServiceFactory
	settings   SettingsProviderFactory
}

func TestRootCommand_Success(t *testing.T) {
	svc := &testutil.MockKeyExtractionService{
		AuthorizeAndExtractFunc: func(s keytransfer.Settings) (keytransfer.Result, error) {
			return keytransfer.Result{PullOutput: "key\n"}, nil
		},
	}

	out, err := executeRoot(t, &Root{serviceFactory(svc), staticSettings(defaultTestSettings)})

	require.NoError(t, err)
	assert.Contains(t, out, successMessage+"\nkey\n")
	assert.Contains(t, out, "Saved to adbkey")
	assert.NotContains(t, out, failureMessage)
}

func TestRootCommand_FailureIsPrintedNotReturned(t *testing.T) {
	svc := &testutil.MockKeyExtractionService{
		AuthorizeAndExtractFunc: func(s keytransfer.Settings) (keytransfer.Result, error) {
			return keytransfer.Result{}, &keytransfer.ExternalToolError{
				Kind:   keytransfer.KindRootFailed,
				Tool:   "adb",
				Args:   []string{"root"},
				Stderr: "error: no devices/emulators found",
				Err:    errors.New("exit status 1"),
			}
		},
	}

	out, err := executeRoot(t, &Root{serviceFactory(svc), staticSettings(defaultTestSettings)})

	require.NoError(t, err)
	assert.Contains(t, out, "Error: 'adb root' could not enable root on the device: error: no devices/emulators found")
	assert.Contains(t, out, failureMessage)
	assert.NotContains(t, out, successMessage)
}

func TestRootCommand_FlagsOverrideSettings(t *testing.T) {
	var received keytransfer.Settings
	svc := &testutil.MockKeyExtractionService{
		AuthorizeAndExtractFunc: func(s keytransfer.Settings) (keytransfer.Result, error) {
			received = s
			return keytransfer.Result{}, nil
		},
	}

	_, err := executeRoot(t, &Root{serviceFactory(svc), staticSettings(defaultTestSettings)},
		"--tool", "/opt/platform-tools/adb", "-l", "/tmp/out/adbkey")

	require.NoError(t, err)
	assert.Equal(t, keytransfer.Settings{
		BridgeTool: "/opt/platform-tools/adb",
		RemotePath: "/data/misc/adb/adb_key",
		LocalPath:  "/tmp/out/adbkey",
	}, received)
}

func TestRootCommand_ConfigFlagReachesProvider(t *testing.T) {
	var gotPath string
	settingsFactory := func(configPath string) ports.SettingsProvider {
		gotPath = configPath
		return staticSettings(defaultTestSettings)(configPath)
	}
	svc := &testutil.MockKeyExtractionService{
		AuthorizeAndExtractFunc: func(s keytransfer.Settings) (keytransfer.Result, error) {
			return keytransfer.Result{}, nil
		},
	}

	_, err := executeRoot(t, &Root{serviceFactory(svc), settingsFactory}, "--config", "/etc/adbkey.yaml")

	require.NoError(t, err)
	assert.Equal(t, "/etc/adbkey.yaml", gotPath)
}

func TestRootCommand_SettingsErrorStopsBeforeDevice(t *testing.T) {
	called := false
	svc := &testutil.MockKeyExtractionService{
		AuthorizeAndExtractFunc: func(s keytransfer.Settings) (keytransfer.Result, error) {
			called = true
			return keytransfer.Result{}, nil
		},
	}
	brokenSettings := func(string) ports.SettingsProvider {
		return &testutil.MockSettingsProvider{
			GetSettingsFunc: func() (keytransfer.Settings, error) {
				return keytransfer.Settings{}, errors.New("field serial not found in type keytransfer.Settings")
			},
		}
	}

	_, err := executeRoot(t, &Root{serviceFactory(svc), brokenSettings})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not load settings")
	assert.False(t, called, "extraction must not run when settings cannot be loaded")
}

func TestRootCommand_RejectsArguments(t *testing.T) {
	svc := &testutil.MockKeyExtractionService{}
	_, err := executeRoot(t, &Root{serviceFactory(svc), staticSettings(defaultTestSettings)}, "unexpected")
	assert.Error(t, err)
}

func TestSettingsCommand(t *testing.T) {
	called := false
	svc := &testutil.MockKeyExtractionService{
		AuthorizeAndExtractFunc: func(s keytransfer.Settings) (keytransfer.Result, error) {
			called = true
			return keytransfer.Result{}, nil
		},
	}

	out, err := executeRoot(t, &Root{serviceFactory(svc), staticSettings(defaultTestSettings)}, "settings", "--remote", "/data/misc/adb/adb_keys")

	require.NoError(t, err)
	assert.False(t, called, "settings must not touch the device")
	assert.Contains(t, out, "Effective settings:")
	assert.Contains(t, out, "Bridge tool")
	assert.Contains(t, out, "/data/misc/adb/adb_keys")
	assert.Contains(t, out, "(Source: Built-in defaults)")
	assert.NotContains(t, out, "Warning:")
}

func TestSettingsCommand_WarnsOnEmptyValue(t *testing.T) {
	out, err := executeRoot(t, &Root{nil, staticSettings(defaultTestSettings)}, "settings", "--local", "")

	require.NoError(t, err)
	assert.Contains(t, out, "Warning: local path must not be empty")
}

// The end-to-end tests drive the real executor against a fake bridge tool script.

func writeFakeBridge(t *testing.T, script string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fakeadb")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0755))
	return path
}

func realRoot() *Root {
	return &Root{
		extraction: func(logger ports.Logger) ports.KeyExtractionService {
			return keyextraction.NewService(oscommand.NewOSCommandExecutor(), logger)
		},
		settings: func(configPath string) ports.SettingsProvider {
			return settings.NewYAMLProvider(configPath)
		},
	}
}

func TestEndToEnd(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("fake bridge tool is a POSIX shell script")
	}

	t.Run("tool reports success", func(t *testing.T) {
		tool := writeFakeBridge(t, `case "$1" in
  root) exit 0 ;;
  pull) echo key; printf 'secret' > "$3" ;;
esac
`)
		dest := filepath.Join(t.TempDir(), "adbkey")

		out, err := executeRoot(t, realRoot(), "--tool", tool, "--local", dest)

		require.NoError(t, err)
		assert.Contains(t, out, successMessage+"\nkey\n")
		assert.NotContains(t, out, failureMessage)
		content, readErr := os.ReadFile(dest)
		require.NoError(t, readErr)
		assert.Equal(t, "secret", string(content))
	})

	t.Run("tool is absent", func(t *testing.T) {
		dest := filepath.Join(t.TempDir(), "adbkey")

		out, err := executeRoot(t, realRoot(), "--tool", "adbkey-test-missing-bridge", "--local", dest)

		require.NoError(t, err)
		assert.Contains(t, out, failureMessage)
		assert.Contains(t, out, "executable file not found")
		assert.NoFileExists(t, dest)
	})

	t.Run("device unauthorized", func(t *testing.T) {
		tool := writeFakeBridge(t, `echo "error: device unauthorized." 1>&2
exit 1
`)
		dest := filepath.Join(t.TempDir(), "adbkey")

		out, err := executeRoot(t, realRoot(), "--tool", tool, "--local", dest)

		require.NoError(t, err)
		assert.Contains(t, out, failureMessage)
		assert.Contains(t, out, "device unauthorized.")
		assert.NotContains(t, out, successMessage)
		assert.NoFileExists(t, dest)
	})
}
