package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/eclipse/paho.mqtt.golang"
	"gopkg.in/yaml.v2"

	"github.com/matt-g-everett/winfx/anim"
	"github.com/matt-g-everett/winfx/api"
	"github.com/matt-g-everett/winfx/remote"
	"github.com/matt-g-everett/winfx/show"
)

type app struct {
	Config  show.Config
	Client  mqtt.Client
	Control *remote.Control
	Api     *api.Api

	driver  *anim.Driver
	clock   anim.Clock
	targets map[string]anim.Target
}

func newApp() *app {
	a := new(app)
	a.Api = api.NewApi()
	a.targets = make(map[string]anim.Target)
	return a
}

func (a *app) handleOnConnect(client mqtt.Client) {
	log.Println("Connected")
	a.Control.Subscribe()
}

func (a *app) readConfig(configPath string) {
	f, err := os.Open(configPath)
	if err != nil {
		panic(err)
	}

	decoder := yaml.NewDecoder(f)
	err = decoder.Decode(&a.Config)
	if err != nil {
		panic(err)
	}
}

func (a *app) createWindows() {
	for _, wc := range a.Config.Show.Windows {
		color, err := anim.Hex(wc.Color)
		if err != nil {
			panic(err)
		}

		w := remote.NewWindow(a.Client, a.Config.Mqtt.Topics.Windows, wc.ID,
			anim.Vec2{X: wc.X, Y: wc.Y}, anim.Vec2{X: wc.W, Y: wc.H},
			wc.Opacity, color)
		a.targets[wc.Name] = w.Target()
		a.driver.Track(w.Target())
	}
}

// run drives the show act by act through the manual stepping path so a
// skip or stop command can take effect between ticks. Each act is built
// when it starts, so its tweens sample their start values from whatever
// the previous acts left behind.
func (a *app) run() {
	if token := a.Client.Connect(); token.Wait() && token.Error() != nil {
		panic(token.Error())
	}

	var ticks uint64
	for i, act := range a.Config.Show.Acts {
		step, err := show.Build([]show.Act{act}, a.targets)
		if err != nil {
			panic(err)
		}

		for {
			dt := a.clock.Tick()
			done := a.driver.Advance(step, dt)
			a.Control.PumpEvents()
			ticks++
			a.Api.Update(true, i, ticks)

			if a.Control.Stop() {
				log.Println("Stopped by control message")
				a.Api.Update(false, i, ticks)
				return
			}
			if done || a.Control.Skip() {
				break
			}
		}
	}
	a.Api.Update(false, len(a.Config.Show.Acts), ticks)
	log.Println("Show complete")
}

func main() {
	mqtt.ERROR = log.New(os.Stdout, "", 0)

	// Parse command line parameters
	configPath := flag.String("config", "config.yaml", "YAML config file.")
	flag.Parse()

	// Read the config
	a := newApp()
	a.readConfig(*configPath)
	log.Printf("Config: %+v", a.Config)

	options := mqtt.NewClientOptions().
		AddBroker(a.Config.Mqtt.URL).
		SetClientID("winfx").
		SetUsername(a.Config.Mqtt.Username).
		SetPassword(a.Config.Mqtt.Password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second).
		SetOnConnectHandler(a.handleOnConnect)
	a.Client = mqtt.NewClient(options)
	a.Control = remote.NewControl(a.Client, a.Config.Mqtt.Topics.Control)

	fps := a.Config.Show.FPS
	if fps <= 0 {
		fps = 60
	}
	a.clock = anim.NewFrameClock(fps)
	a.driver = anim.NewDriver(a.clock, a.Control)
	a.createWindows()

	go a.Api.Serve()

	a.run()
}
