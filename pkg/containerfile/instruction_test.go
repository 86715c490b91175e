package containerfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrom(t *testing.T) {
	t.Run("valid image", func(t *testing.T) {
		r := From("nginx", nil)
		require.False(t, r.Failed())

		ins, isFrom := r.Value().(fromInstruction)
		require.True(t, isFrom)
		assert.Equal(t, KindFrom, ins.Kind())
		assert.Equal(t, ImageName("nginx"), ins.image)
		assert.Empty(t, ins.as)
		assert.Empty(t, ins.platform)
	})

	t.Run("options carried through", func(t *testing.T) {
		r := From("node:20", &FromOpts{As: "builder", Platform: "linux/arm64"})
		require.False(t, r.Failed())

		ins := r.Value().(fromInstruction)
		assert.Equal(t, "builder", ins.as)
		assert.Equal(t, "linux/arm64", ins.platform)
	})

	t.Run("empty image", func(t *testing.T) {
		r := From("", nil)
		require.True(t, r.Failed())
		require.Len(t, r.Errs(), 1)
		assert.Equal(t, "image", r.Errs()[0].Field)
	})
}

func TestRun(t *testing.T) {
	t.Run("shell form", func(t *testing.T) {
		r := Run("npm ci")
		require.False(t, r.Failed())
		assert.Equal(t, KindRun, r.Value().Kind())
	})

	t.Run("exec form", func(t *testing.T) {
		r := RunExec("npm", "ci")
		require.False(t, r.Failed())
		assert.True(t, r.Value().(runInstruction).command.isExec())
	})

	t.Run("empty shell command", func(t *testing.T) {
		r := Run("")
		require.True(t, r.Failed())
		assert.Equal(t, "command", r.Errs()[0].Field)
	})

	t.Run("empty exec vector", func(t *testing.T) {
		r := RunExec()
		require.True(t, r.Failed())
		assert.Equal(t, "command", r.Errs()[0].Field)
	})

	t.Run("bad exec element indexed", func(t *testing.T) {
		r := RunExec("npm", "")
		require.True(t, r.Failed())
		require.Len(t, r.Errs(), 1)
		assert.Equal(t, "command[1]", r.Errs()[0].Field)
	})
}

func TestCopy(t *testing.T) {
	t.Run("valid with options", func(t *testing.T) {
		r := Copy([]string{"a.txt", "b.txt"}, "/dest/", &CopyOpts{From: "builder", Chown: "app:app"})
		require.False(t, r.Failed())

		ins := r.Value().(copyInstruction)
		assert.Equal(t, []string{"a.txt", "b.txt"}, ins.src)
		assert.Equal(t, Path("/dest/"), ins.dest)
		assert.Equal(t, "builder", ins.from)
	})

	t.Run("bad src element indexed", func(t *testing.T) {
		r := Copy([]string{"a.txt", ""}, "/dest/", nil)
		require.True(t, r.Failed())
		require.Len(t, r.Errs(), 1)
		assert.Equal(t, "src[1]", r.Errs()[0].Field)
	})

	t.Run("all invalid fields accumulate in declaration order", func(t *testing.T) {
		r := Copy([]string{""}, "", nil)
		require.True(t, r.Failed())
		require.Len(t, r.Errs(), 2)
		assert.Equal(t, "src[0]", r.Errs()[0].Field)
		assert.Equal(t, "dest", r.Errs()[1].Field)
	})
}

func TestAdd(t *testing.T) {
	r := Add([]string{"archive.tar.gz"}, "/opt/", &AddOpts{Chmod: "0755"})
	require.False(t, r.Failed())

	ins := r.Value().(addInstruction)
	assert.Equal(t, KindAdd, ins.Kind())
	assert.Equal(t, "0755", ins.chmod)

	r = Add(nil, "", nil)
	require.True(t, r.Failed())
	require.Len(t, r.Errs(), 2)
	assert.Equal(t, "src", r.Errs()[0].Field)
	assert.Equal(t, "dest", r.Errs()[1].Field)
}

func TestWorkdir(t *testing.T) {
	r := Workdir("/app")
	require.False(t, r.Failed())
	assert.Equal(t, KindWorkdir, r.Value().Kind())

	r = Workdir("")
	require.True(t, r.Failed())
	assert.Equal(t, "path", r.Errs()[0].Field)
}

func TestEnv(t *testing.T) {
	t.Run("empty value allowed", func(t *testing.T) {
		r := Env("DEBUG", "")
		require.False(t, r.Failed())
	})

	t.Run("empty key rejected", func(t *testing.T) {
		r := Env("", "1")
		require.True(t, r.Failed())
		assert.Equal(t, "key", r.Errs()[0].Field)
	})
}

func TestExpose(t *testing.T) {
	t.Run("single port", func(t *testing.T) {
		r := Expose(8080, nil)
		require.False(t, r.Failed())

		ins := r.Value().(exposeInstruction)
		assert.Equal(t, Port(8080), ins.port)
		assert.Nil(t, ins.endPort)
	})

	t.Run("range", func(t *testing.T) {
		r := ExposeRange(5000, 5010, &ExposeOpts{Protocol: ProtocolUDP})
		require.False(t, r.Failed())

		ins := r.Value().(exposeInstruction)
		assert.Equal(t, Port(5000), ins.port)
		require.NotNil(t, ins.endPort)
		assert.Equal(t, Port(5010), *ins.endPort)
		assert.Equal(t, ProtocolUDP, ins.protocol)
	})

	t.Run("bad port and bad protocol both reported", func(t *testing.T) {
		r := Expose(-1, &ExposeOpts{Protocol: "icmp"})
		require.True(t, r.Failed())
		require.Len(t, r.Errs(), 2)
		assert.Equal(t, "port", r.Errs()[0].Field)
		assert.Equal(t, "protocol", r.Errs()[1].Field)
	})

	t.Run("inverted range rejected", func(t *testing.T) {
		r := ExposeRange(100, 50, nil)
		require.True(t, r.Failed())
		assert.Equal(t, "port", r.Errs()[0].Field)
	})
}

func TestCmdAndEntrypoint(t *testing.T) {
	r := CmdExec("node", "index.js")
	require.False(t, r.Failed())
	assert.Equal(t, KindCmd, r.Value().Kind())

	r = Entrypoint("/entrypoint.sh")
	require.False(t, r.Failed())
	assert.Equal(t, KindEntrypoint, r.Value().Kind())

	r = EntrypointExec()
	require.True(t, r.Failed())
	assert.Equal(t, "command", r.Errs()[0].Field)
}

func TestArg(t *testing.T) {
	t.Run("no default", func(t *testing.T) {
		r := Arg("VERSION")
		require.False(t, r.Failed())
		assert.Nil(t, r.Value().(argInstruction).defaultValue)
	})

	t.Run("empty default is distinct from no default", func(t *testing.T) {
		r := ArgDefault("VERSION", "")
		require.False(t, r.Failed())

		ins := r.Value().(argInstruction)
		require.NotNil(t, ins.defaultValue)
		assert.Empty(t, *ins.defaultValue)
	})

	t.Run("empty name rejected", func(t *testing.T) {
		r := Arg("")
		require.True(t, r.Failed())
		assert.Equal(t, "name", r.Errs()[0].Field)
	})
}

func TestLabel(t *testing.T) {
	r := Label("maintainer", "team@example.com")
	require.False(t, r.Failed())
	assert.Equal(t, KindLabel, r.Value().Kind())

	r = Label("", "x")
	require.True(t, r.Failed())
	assert.Equal(t, "key", r.Errs()[0].Field)
}
