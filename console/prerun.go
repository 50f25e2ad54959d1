package console

// PreRun is a function that runs right before a selected [Command].
// It sees the parsed [Input] and the [Output] with verbosity already resolved.
type PreRun func(command string, in *Input, out *Output) error

// AddPreRun registers a function that will be executed right before a [Command] runs.
// If a [PreRun] returns an error, then the [Command] will not be executed, and the error will be returned from [Console.Run] instead.
// Note that no [PreRun] functions will be executed when help is rendered.
//
// Passing a nil [PreRun] function to this method will panic.
func (c *Console) AddPreRun(fn PreRun) *Console {
	if fn == nil {
		panic("nil pre-run function")
	}
	c.preRun = append(c.preRun, fn)
	return c
}

func (c *Console) runPreRun(command string) error {
	for _, fn := range c.preRun {
		if err := fn(command, c.input, c.output); err != nil {
			return err
		}
	}
	return nil
}
