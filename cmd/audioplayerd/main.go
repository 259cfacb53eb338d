package main

//go-build: CGO_ENABLED=0

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/golang/glog"

	"github.com/robotalks/audio.go/pkg/framework"
	"github.com/robotalks/audio.go/pkg/l1"
	env "github.com/robotalks/audio.go/pkg/l1/env/controller"
	"github.com/robotalks/audio.go/pkg/metrics"
	"github.com/robotalks/audio.go/pkg/player"
	"github.com/robotalks/audio.go/pkg/transport"
)

func init() {
	env.SetControllerType("audio-player", l1.ControllerMeta{Description: "DFPlayer Mini Audio Player"})
	env.SetupFlags()
	player.SetupFlags()
}

// metricsServer exports the metrics of ctl on addr.
func metricsServer(addr string, ctl *player.Controller) (framework.Runnable, error) {
	reg := metrics.NewRegistry()
	ctl.AddListener(metrics.NewListener(reg))
	if pump, ok := ctl.Stream().(*transport.Pump); ok {
		metrics.RegisterDroppedBytes(reg, pump.Dropped)
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler(reg))
	srv := &http.Server{Handler: mux}
	glog.Infof("serving metrics on %s", ln.Addr())
	return framework.RunFunc(func(ctx context.Context) error {
		return framework.RunWithContextCancel(ctx, func() { srv.Close() }, func() error {
			if err := srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
	}), nil
}

func main() {
	if err := player.ParseFlags(); err != nil {
		glog.Exit(err)
	}

	env := env.Default().MustNewEnv()
	conf := player.Default()
	ctl, err := conf.NewController(env)
	if err != nil {
		glog.Exit(err)
	}

	runner := framework.NewRunner().HandleSignals()
	if conf.MetricsAddr != "" {
		srv, err := metricsServer(conf.MetricsAddr, ctl)
		if err != nil {
			glog.Exit(err)
		}
		runner.Go(framework.NamedRun("metrics", srv))
	}
	runner.Go(framework.NamedRun("loop", framework.NewLoop().Add(env, ctl)))
	if err := runner.Wait(); err != nil {
		glog.Exit(err)
	}
}
