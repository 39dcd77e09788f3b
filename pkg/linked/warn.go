package linked

import (
	"github.com/carimus/metrolink/pkg/ui"
)

const linkedExplanation = "The following directories are symlink destinations of one or more node_modules " +
	"(i.e. `yarn link` or `npm link` was used to link in a dependency locally). Metro bundler " +
	"doesn't support symlinks so instead metrolink watches the symlink destinations. If you get " +
	"errors about name collisions, list the colliding module(s) in blacklistLinkedModules."

// WarnDeveloper tells the developer that linked dependencies are in use,
// which directories are watched because of them and which modules are
// hidden inside them.
func WarnDeveloper(sink ui.Sink, devPaths, modules []string) {
	notice := ui.Notice{
		Headline:   "you have symlinked dependencies in node_modules!",
		Paragraphs: []string{linkedExplanation},
		Lists:      []ui.List{{Items: devPaths}},
	}
	if len(modules) > 0 {
		notice.Lists = append(notice.Lists, ui.List{
			Title: "Colliding modules that are blacklisted if they show up in the symlinked dependencies:",
			Items: modules,
		})
	}
	sink.Warn(notice)
}

func warnInferredRoot(sink ui.Sink, root string) {
	sink.Warn(ui.Notice{
		Headline:   "projectRoot was not specified explicitly.",
		Paragraphs: []string{"It has been inferred as:"},
		Lists:      []ui.List{{Items: []string{root}}},
	})
}
