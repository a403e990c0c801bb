package fakes

type CommandRunner struct {
	RunCall struct {
		CallCount int
		Receives  struct {
			Dir     string
			Command string
			Args    []string
		}
		Invocations []struct {
			Dir     string
			Command string
			Args    []string
		}
		Returns struct {
			Stdout string
			Stderr string
			Err    error
		}
		Stub func(dir string, command string, args ...string) (string, string, error)
	}
}

func (r *CommandRunner) Run(dir string, command string, args ...string) (string, string, error) {
	r.RunCall.CallCount++
	r.RunCall.Receives.Dir = dir
	r.RunCall.Receives.Command = command
	r.RunCall.Receives.Args = args

	r.RunCall.Invocations = append(r.RunCall.Invocations, struct {
		Dir     string
		Command string
		Args    []string
	}{Dir: dir, Command: command, Args: args})

	if r.RunCall.Stub != nil {
		return r.RunCall.Stub(dir, command, args...)
	}

	return r.RunCall.Returns.Stdout, r.RunCall.Returns.Stderr, r.RunCall.Returns.Err
}
