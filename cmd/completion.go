package cmd

import (
	"flag"

	"github.com/etnz/hw01/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// fileFlags are the flags whose value is a path.
var fileFlags = map[string]bool{
	"config":   true,
	"input":    true,
	"plot-out": true,
	"xlsx":     true,
}

// predictors returns the completion of every flag of fs.
func predictors(fs *flag.FlagSet) map[string]complete.Predictor {
	res := make(map[string]complete.Predictor)
	fs.VisitAll(func(f *flag.Flag) {
		switch {
		case isBoolFlag(f):
			res[f.Name] = predict.Nothing
		case fileFlags[f.Name]:
			res[f.Name] = predict.Files("*")
		case f.Name == "plot-kind":
			res[f.Name] = predict.Set{PriceMA, ReturnsHist}
		default:
			res[f.Name] = predict.Something
		}
	})
	return res
}

func isBoolFlag(f *flag.Flag) bool {
	b, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}

// Completion returns the shell completion of the command line: global flags,
// Commands and their flags, and topic names.
func Completion() *complete.Command {
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: predictors(flag.CommandLine),
	}
	for _, c := range Commands {
		fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(fs)
		root.Sub[c.Name()] = &complete.Command{Flags: predictors(fs)}
	}
	for _, name := range []string{"help", "flags", "commands"} {
		root.Sub[name] = &complete.Command{}
	}
	if topics, err := docs.GetAllTopics(); err == nil {
		root.Sub["topic"].Args = predict.Set(append(topics, docs.Readme))
	}
	return root
}
