package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/callebjorkell/openlcd/internal/backlight"
	"github.com/callebjorkell/openlcd/internal/boot"
	"github.com/callebjorkell/openlcd/internal/console"
	"github.com/callebjorkell/openlcd/internal/contrast"
	"github.com/callebjorkell/openlcd/internal/device"
	"github.com/callebjorkell/openlcd/internal/eeprom"
	"github.com/callebjorkell/openlcd/internal/host"
	"github.com/callebjorkell/openlcd/internal/lcd"
	"github.com/callebjorkell/openlcd/internal/protocol"
	"github.com/callebjorkell/openlcd/internal/rxpin"
	"github.com/callebjorkell/openlcd/internal/settings"
	log "github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	app        = kingpin.New("openlcd", "Serial LCD adapter")
	debug      = app.Flag("debug", "Turn on debug logging.").Bool()
	configFile = app.Flag("config", "Config file.").Default(defaultConfigFile).String()
	start      = app.Command("start", "Start the display")
	holdRX     = start.Flag("hold-rx", "Boot as if the host held the RX line low.").Bool()
	dump       = app.Command("dump", "Print the stored settings and the EEPROM image")
	versionCmd = app.Command("version", "Print the version")
)

func main() {
	cmd, err := app.Parse(os.Args[1:])
	if err != nil {
		fmt.Printf("%v: Try --help\n", err.Error())
		os.Exit(1)
	}

	log.SetFormatter(&log.TextFormatter{
		TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if *debug {
		log.Info("Enabling debug output...")
		log.SetLevel(log.DebugLevel)
	}

	switch cmd {
	case start.FullCommand():
		conf, err := readConfig(*configFile)
		if err != nil {
			log.Fatal(err)
		}
		if err := startDisplay(conf); err != nil {
			log.Fatal(err)
		}
	case dump.FullCommand():
		conf, err := readConfig(*configFile)
		if err != nil {
			log.Fatal(err)
		}
		if err := dumpEEPROM(conf); err != nil {
			log.Fatal(err)
		}
	case versionCmd.FullCommand():
		showVersion()
	default:
		kingpin.FatalUsage("Unrecognized command")
	}
}

type link interface {
	Read(p []byte) (int, error)
	SetBaud(rate int) error
	Close() error
}

func openLink(conf *Config, r settings.Runtime) (link, error) {
	if conf.UART == "" {
		log.Info("No UART configured, reading from stdin")
		return host.NewStream(os.Stdin), nil
	}
	return host.OpenUART(conf.UART, r.Baud.Rate())
}

func startDisplay(conf *Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := eeprom.OpenFile(conf.EEPROM)
	if err != nil {
		return err
	}
	defer store.Close()

	rx, err := rxpin.Open(conf.RXPin)
	if err != nil {
		return err
	}
	var pin boot.Pin = rx
	if *holdRX {
		pin = rxpin.Held()
	}

	controller := boot.NewController(store, pin)
	r, mode, err := controller.Boot()
	if err != nil {
		return err
	}
	log.Infof("Boot mode: %v", mode)

	display, err := lcd.Open()
	if err != nil {
		return err
	}
	led, err := backlight.NewLedController(conf.LedCount)
	if err != nil {
		return err
	}
	defer led.Close()
	dac, closeDAC, err := contrast.Open(conf.DACAddress)
	if err != nil {
		return err
	}
	defer closeDAC()

	l, err := openLink(conf, r)
	if err != nil {
		return err
	}
	defer l.Close()

	executor := device.NewExecutor(r, store, display, led, dac, l,
		device.WithMessageDelay(conf.SystemMessageDelay()),
		device.WithVersion(version()),
	)
	if err := controller.Start(executor, mode); err != nil {
		return err
	}
	dev := device.New(protocol.NewDecoder(), executor)

	ring := host.NewRing(host.RingSize)
	go func() {
		if err := host.Pump(ctx, l, ring); err != nil && ctx.Err() == nil {
			log.Warn("Host link failed: ", err)
			stop()
		}
	}()

	if conf.ConsoleEnabled() {
		c := console.NewServer(conf.Console, dev, store, ring)
		go func() {
			if err := c.Listen(); err != nil {
				log.Warn("Console stopped: ", err)
			}
		}()
		defer c.Close()
	}

	log.Info("Ready")
	err = dev.Run(ctx, ring.C())
	if ctx.Err() != nil {
		log.Info("Shutting down...")
		return nil
	}
	return err
}

func dumpEEPROM(conf *Config) error {
	store, err := eeprom.OpenFile(conf.EEPROM)
	if err != nil {
		return err
	}
	defer store.Close()

	r, corrupted, err := settings.Load(store)
	if err != nil {
		return err
	}
	fmt.Println(r)
	for _, f := range corrupted {
		fmt.Printf("%v is not set or invalid\n", f)
	}

	d, err := eeprom.Dump(store)
	if err != nil {
		return err
	}
	fmt.Print(d)
	return nil
}
