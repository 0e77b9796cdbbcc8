package main

import (
	"fmt"

	bshttp "github.com/fwojciec/blogsmith/http"
	bsprom "github.com/fwojciec/blogsmith/prometheus"
)

// Run executes the serve command. It blocks until deps.Ctx is cancelled.
func (c *ServeCmd) Run(deps *Dependencies) error {
	s := &bshttp.Server{
		Addr:     c.Addr,
		Titles:   deps.Titles,
		Articles: deps.Articles,
		Metadata: deps.Metadata,
		Exporter: deps.Exporter,
		Logger:   deps.logger(),
	}
	if deps.Metrics != nil {
		s.Metrics = deps.Metrics
	}
	if deps.Gatherer != nil {
		s.MetricsHandler = bsprom.Handler(deps.Gatherer)
	}

	if err := s.Open(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: cannot listen on %s: %v\n", c.Addr, err)
		return err
	}
	fmt.Fprintf(deps.Stdout, "Listening on %s\n", s.URL())

	<-deps.Ctx.Done()
	deps.logger().Info("shutting down")
	return s.Close()
}
