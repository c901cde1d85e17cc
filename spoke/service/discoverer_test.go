package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"lgsmfleet/spoke/domain"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string, mode os.FileMode) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), mode))
	require.NoError(t, os.Chmod(path, mode))
}

func TestScriptDiscoverer_Discover(t *testing.T) {
	home := t.TempDir()
	writeFile(t, filepath.Join(home, "vhserver"), "#!/bin/bash\n", 0o755)
	writeFile(t, filepath.Join(home, "mygame"), "#!/bin/bash\n# LinuxGSM instance script\n", 0o750)
	writeFile(t, filepath.Join(home, "tool.sh"), "#!/bin/sh\necho hi\n", 0o755)
	writeFile(t, filepath.Join(home, "notes"), "LinuxGSM notes\n", 0o644)
	writeFile(t, filepath.Join(home, ".hiddenserver"), "#!/bin/bash\n", 0o755)
	writeFile(t, filepath.Join(home, "linuxgsm.sh"), "#!/bin/bash\n# LinuxGSM installer\n", 0o755)
	require.NoError(t, os.Mkdir(filepath.Join(home, "dirserver"), 0o755))
	require.NoError(t, os.Symlink(filepath.Join(home, "vhserver"), filepath.Join(home, "linkserver")))
	require.NoError(t, os.Symlink(filepath.Join(home, "absent"), filepath.Join(home, "brokenserver")))

	d := NewScriptDiscoverer(domain.DefaultScriptRules(), log.NewNopLogger())
	res := d.Discover(context.Background(), domain.ManagedUser{Username: "vh", HomeDir: home})

	names := make([]string, 0, len(res.Value))
	for _, s := range res.Value {
		names = append(names, s.Name)
		assert.Equal(t, "vh", s.Owner)
	}
	assert.Equal(t, []string{"linkserver", "mygame", "vhserver"}, names)
	assert.Empty(t, res.Diagnostics)
}

func TestScriptDiscoverer_MissingHome(t *testing.T) {
	d := NewScriptDiscoverer(domain.DefaultScriptRules(), log.NewNopLogger())
	res := d.Discover(context.Background(), domain.ManagedUser{Username: "ghost", HomeDir: filepath.Join(t.TempDir(), "absent")})

	assert.Empty(t, res.Value)
	require.Len(t, res.Diagnostics, 1)
	assert.Equal(t, "ghost", res.Diagnostics[0].User)
	assert.Equal(t, "script_discoverer", res.Diagnostics[0].Component)
}

func TestReadHead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f")
	writeFile(t, path, "0123456789", 0o644)

	head, err := readHead(path, 4)
	require.NoError(t, err)
	assert.Equal(t, "0123", string(head))

	head, err = readHead(path, 100)
	require.NoError(t, err)
	assert.Equal(t, "0123456789", string(head))
}
