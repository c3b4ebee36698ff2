package main

import (
	"fmt"
	"iter"
	"strconv"

	"github.com/on-the-ground/effect_ive_io/effects"
	"github.com/on-the-ground/effect_ive_io/effects/console"
	"github.com/on-the-ground/effect_ive_io/effects/log"
)

const helpText = `The Amazing Factorial REPL, v2.0
q - quit
<number> - compute the factorial of the given number
<anything else> - crash spectacularly`

const quit = "q"

func upTo(n int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 1; i <= n; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

// factorial multiplies into a Ref cell, one effect per factor.
func factorial(n int) effects.Node[int] {
	return effects.FlatMap(effects.NewRef(1), func(acc effects.Ref[int]) effects.Node[int] {
		return effects.Then(
			effects.ForEachSeq(upTo(n), func(i int) effects.Node[int] {
				return acc.Modify(func(x int) int { return x * i })
			}),
			acc.Get(),
		)
	})
}

func factorialREPL() effects.Node[effects.Unit] {
	answer := func(line string) effects.Node[bool] {
		return effects.FlatMap(console.ParseInt(line), func(n int) effects.Node[bool] {
			return effects.FlatMap(factorial(n), func(f int) effects.Node[bool] {
				return effects.Then(
					effects.Sequence(
						log.Debug("factorial computed", map[string]interface{}{"n": n}),
						console.PrintLine("factorial: "+strconv.Itoa(f)),
					),
					effects.Pure(true),
				)
			})
		})
	}

	return effects.Then(
		console.PrintLine(helpText),
		effects.DoWhile(console.ReadLine(), func(line string) effects.Node[bool] {
			if line == quit {
				return effects.Pure(false)
			}
			return answer(line)
		}),
	)
}

func fahrenheitToCelsius(f float64) float64 {
	return (f - 32) * 5.0 / 9.0
}

func converter() effects.Node[effects.Unit] {
	return effects.Then(
		console.PrintLine("Enter a temperature in degrees Fahrenheit:"),
		effects.FlatMap(console.ReadFloat(), func(f float64) effects.Node[effects.Unit] {
			return console.PrintLine(fmt.Sprintf("%g degrees Celsius", fahrenheitToCelsius(f)))
		}),
	)
}
