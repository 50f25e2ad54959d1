package console

import (
	"fmt"
	"os"
)

type greetCommand struct {
	name  *Argument
	shout *Flag
}

func (c *greetCommand) RegisterInput(in *Input) error {
	c.name = NewArgument("name", "Who to greet").SetRequired(true)
	c.shout = NewFlag("shout", "Greet loudly").Alias('s')
	if err := in.AddArgument(c.name); err != nil {
		return err
	}
	return in.AddFlag(c.shout)
}

func (c *greetCommand) Run(_ *Input, out *Output) error {
	greeting := "Hello, " + c.name.Value()
	if c.shout.Bool() {
		greeting += "!"
	}
	out.Out("<info>" + greeting + "</info>")
	out.OutAt(2, "Greeted "+c.name.Value())
	return nil
}

func ExampleConsole_Run() {
	// DefaultConfig could be used instead to get arguments from the running process.
	cfg := Config{
		Name:    "greeter",
		Args:    []string{"greet", "-vs", "World"},
		Writer:  os.Stdout,
		NoColor: true,
	}
	c := New(cfg).AddCommand("greet", "Greets someone", func() Command {
		return new(greetCommand)
	})

	if err := c.Run(); err != nil {
		fmt.Println("Something bad happened:", err)
	}

	// Output:
	// Hello, World!
}

func ExampleOutput_Format() {
	out := NewOutput()
	out.SetRenderer(PlainRenderer{})
	out.SetStyle("info", NewStyle("green", "bold"))
	fmt.Println(out.Format("<info>styled</info> and <unknown>literal</unknown>"))

	// Output:
	// styled and <unknown>literal</unknown>
}
