package main

import (
	"fmt"
	"os"

	"github.com/erdragh/structures/list"
	"github.com/hashicorp/go-hclog"
)

func main() {
	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "example",
		Level:  hclog.Debug,
		Output: os.Stderr,
	})

	l := list.New[string](list.WithLogger(logger.Named("list")))

	for i := 0; i < 10; i++ {
		l.Put(fmt.Sprintf("String %d", i))
	}

	if err := l.Set(4, "String should be replaced"); err != nil {
		panic(err)
	}
	logger.Info("filled list", "length", l.Len())

	last, _ := l.Take()
	logger.Info("took last element", "value", last, "length", l.Len())

	v, err := l.Get(4)
	if err != nil {
		panic(err)
	}
	logger.Info("element at index 4", "value", v)

	// Reports through the list logger and returns an error.
	if _, err := l.Get(l.Len()); err != nil {
		logger.Warn("read past the end", "error", err)
	}

	fmt.Println(l.Values())
}
