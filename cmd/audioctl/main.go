package main

//go-build: CGO_ENABLED=0

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"reflect"
	"time"

	"github.com/google/uuid"

	"github.com/robotalks/audio.go/pkg/l1"
	"github.com/robotalks/audio.go/pkg/l1/comm/mqtt"
	"github.com/robotalks/audio.go/pkg/l1/msgs"
	playermsgs "github.com/robotalks/audio.go/pkg/player/msgs"
)

var (
	mqttURL    = "mqtt://localhost:1883/robo/"
	ref        = l1.ControllerRef{Type: "audio-player"}
	timeout    = 5 * time.Second
	outputJSON bool
)

func init() {
	if val := os.Getenv("AUDIO_MQTT_URL"); val != "" {
		mqttURL = val
	}
	flag.StringVar(&mqttURL, "mqtt", mqttURL, "MQTT broker URL.")
	flag.StringVar(&ref.Type, "type", ref.Type, "Controller type.")
	flag.StringVar(&ref.ID, "id", ref.ID, "Controller ID.")
	flag.DurationVar(&timeout, "timeout", timeout, "Wait for the reply at most this long.")
	flag.BoolVar(&outputJSON, "json", outputJSON, "Print the reply as JSON.")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] OPERATION [ARGS...]\n", os.Args[0])
		flag.PrintDefaults()
	}
}

func run() error {
	cmd, err := playermsgs.ParseCommand(flag.Args())
	if err != nil {
		return err
	}
	if !ref.IsValid() {
		return fmt.Errorf("-id must be specified")
	}
	opts, prefix, err := mqtt.ClientOptionsFromURL(mqttURL)
	if err != nil {
		return err
	}
	if opts.ClientID == "" {
		opts.SetClientID("audioctl:" + uuid.NewString())
	}
	q := mqtt.NewQueue(opts, prefix)
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if token := q.Connect(); !token.WaitTimeout(timeout) {
		return fmt.Errorf("connect %s: timed out", mqttURL)
	} else if err := token.Error(); err != nil {
		return err
	}
	defer q.Close()

	client := mqtt.NewClient(q, ref)
	if token := client.Start(); token.Wait() && token.Error() != nil {
		return token.Error()
	}
	defer client.Stop()
	reply, err := client.Do(ctx, cmd)
	if err != nil {
		return err
	}
	if outputJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(reply)
	}
	fmt.Printf("[%s] %s\n", reflect.Indirect(reflect.ValueOf(reply)).Type().Name(),
		reply.(msgs.SerializableMessage).Serializable().String())
	return nil
}

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
