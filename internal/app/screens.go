package app

import (
	"github.com/abhisek/verdict/internal/flow"
	"github.com/abhisek/verdict/internal/router"
	"github.com/abhisek/verdict/internal/screen"
	"github.com/abhisek/verdict/internal/screens/about"
	"github.com/abhisek/verdict/internal/screens/casefile"
	"github.com/abhisek/verdict/internal/screens/howto"
	"github.com/abhisek/verdict/internal/screens/landing"
	"github.com/abhisek/verdict/internal/screens/results"
	"github.com/abhisek/verdict/internal/ui/markdown"
)

// newFactory maps every controller state to the screen that presents it.
func newFactory(opts Options, controller *flow.Controller) router.Factory {
	renderer := markdown.New(opts.Config.MarkdownStyle)
	cases := opts.Catalog.All()
	keySources := about.KeySources(cases)

	return func(st flow.State) screen.Screen {
		switch st.Screen {
		case flow.ScreenAbout:
			return about.New(renderer, keySources, opts.Logger)
		case flow.ScreenHowTo:
			return howto.New()
		case flow.ScreenCase:
			c, _ := opts.Catalog.At(st.CaseIndex)
			return casefile.New(c, st.CaseIndex, opts.Catalog.Count())
		case flow.ScreenResults:
			return results.New(cases, controller.Verdicts(), results.Deps{
				Copier: opts.Copier,
				Flash:  opts.Config.Clipboard.Flash,
				Logger: opts.Logger,
			})
		default:
			return landing.New()
		}
	}
}
