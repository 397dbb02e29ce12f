package main

import (
	"log/slog"
	"os"

	"github.com/xgzlucario/sortedlist"
	"github.com/xgzlucario/sortedlist/option"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	l, err := sortedlist.NewWithOption(&option.Option{Kind: "string", Capacity: 8})
	if err != nil {
		panic(err)
	}

	for _, s := range []any{"Symfony", "php8.3", "linux", "aweSome", 10} {
		v, err := sortedlist.Of(s)
		if err == nil {
			err = l.Add(v)
		}
		if err != nil {
			logger.Error("add", "input", s, "err", err)
			continue
		}
		logger.Info("add", "value", v, "list", l)
	}

	for v := range l.All() {
		logger.Info("iter", "value", v)
	}

	for {
		v, ok := l.Pop()
		if !ok {
			break
		}
		logger.Info("pop", "value", v, "left", l.Size())
	}
}
