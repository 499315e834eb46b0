package executor

import (
	"context"
	"os/exec"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate . Executor
type Executor interface {
	Command(ctx context.Context, name string, args ...string) Command
	LookPath(file string) (string, error)
}

//counterfeiter:generate . Command
type Command interface {
	SetDir(dir string)
	CombinedOutput() ([]byte, error)
}

var _ Executor = BinaryFileExecutor{}

type BinaryFileExecutor struct{}

func (BinaryFileExecutor) Command(ctx context.Context, name string, args ...string) Command {
	return &binaryCommand{cmd: exec.CommandContext(ctx, name, args...)}
}

func (BinaryFileExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

var _ Command = &binaryCommand{}

type binaryCommand struct {
	cmd *exec.Cmd
}

func (b *binaryCommand) SetDir(dir string) {
	b.cmd.Dir = dir
}

func (b *binaryCommand) CombinedOutput() ([]byte, error) {
	return b.cmd.CombinedOutput()
}
