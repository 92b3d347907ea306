// lcd-send plays the host side of the link, for trying out a display by hand.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/callebjorkell/openlcd/internal/console"
	"github.com/callebjorkell/openlcd/internal/host"
	"github.com/callebjorkell/openlcd/internal/protocol"
	"github.com/callebjorkell/openlcd/internal/settings"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	app        = kingpin.New("lcd-send", "Send text and commands to an OpenLCD display")
	debug      = app.Flag("debug", "Turn on debug logging.").Bool()
	consoleURL = app.Flag("console", "Console URL of the display.").Default("http://localhost:8090").String()
	uart       = app.Flag("uart", "Serial device to send to instead of the console.").String()
	baud       = app.Flag("baud", "Line speed of the serial device.").Default("9600").Int()

	text     = app.Command("text", "Print text")
	textArg  = text.Arg("text", "Text to print").Required().String()
	clearCmd = app.Command("clear", "Clear the display")
	rgb      = app.Command("rgb", "Set the backlight color")
	rgbArgs  = rgb.Arg("levels", "Red, green and blue, 0-255. 124 and 254 can not be sent, they start a new command.").Required().Uint8List()
	width    = app.Command("width", "Set the display width")
	widthArg = width.Arg("columns", "16 or 20").Required().Uint8()
	lines    = app.Command("lines", "Set the number of lines")
	linesArg = lines.Arg("lines", "1, 2 or 4").Required().Uint8()
	contrast = app.Command("contrast", "Set the contrast")
	level    = contrast.Arg("level", "Contrast level").Required().Uint8()
	speed    = app.Command("speed", "Change the baud rate of the display")
	speedArg = speed.Arg("rate", "New baud rate").Required().Int()
	reset    = app.Command("reset", "Software reset")
	ver      = app.Command("version", "Show the firmware version on the display")
	status   = app.Command("status", "Print the state of the display")
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
		log.SetLevel(log.DebugLevel)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if cmd == status.FullCommand() {
		if err := printStatus(ctx); err != nil {
			log.Fatal(err)
		}
		return
	}

	actions, err := commandActions(cmd)
	if err != nil {
		log.Fatal(err)
	}
	if err := send(ctx, actions); err != nil {
		log.Fatal(err)
	}
}

func commandActions(cmd string) ([]protocol.Action, error) {
	switch cmd {
	case text.FullCommand():
		var out []protocol.Action
		for _, c := range []byte(*textArg) {
			out = append(out, protocol.Literal{Char: c})
		}
		return out, nil
	case clearCmd.FullCommand():
		return []protocol.Action{protocol.ClearDisplay{}}, nil
	case rgb.FullCommand():
		levels := *rgbArgs
		if len(levels) != 3 {
			return nil, fmt.Errorf("expected 3 levels, got %d", len(levels))
		}
		return []protocol.Action{protocol.SetRGB{Red: levels[0], Green: levels[1], Blue: levels[2]}}, nil
	case width.FullCommand():
		return []protocol.Action{protocol.SetWidth{Columns: *widthArg}}, nil
	case lines.FullCommand():
		return []protocol.Action{protocol.SetLines{Lines: *linesArg}}, nil
	case contrast.FullCommand():
		return []protocol.Action{protocol.SetContrast{Level: *level}}, nil
	case speed.FullCommand():
		b, err := baudFor(*speedArg)
		if err != nil {
			return nil, err
		}
		return []protocol.Action{protocol.SetBaud{Baud: b}}, nil
	case reset.FullCommand():
		return []protocol.Action{protocol.SoftwareReset{}}, nil
	case ver.FullCommand():
		return []protocol.Action{protocol.ShowVersion{}}, nil
	}
	return nil, fmt.Errorf("unrecognized command %s", cmd)
}

func baudFor(rate int) (settings.Baud, error) {
	for b := settings.Baud1200; b.Valid(); b++ {
		if b.Rate() == rate {
			return b, nil
		}
	}
	return 0, fmt.Errorf("%d is not a supported baud rate", rate)
}

func encode(actions []protocol.Action) ([]byte, error) {
	var out []byte
	for _, a := range actions {
		b, err := protocol.Encode(a)
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
	}
	return out, nil
}

func send(ctx context.Context, actions []protocol.Action) error {
	payload, err := encode(actions)
	if err != nil {
		return err
	}
	log.Debugf("Sending % x", payload)

	if *uart != "" {
		u, err := host.OpenUART(*uart, *baud)
		if err != nil {
			return err
		}
		defer u.Close()
		return write(u, payload)
	}

	c, err := console.NewClient(*consoleURL)
	if err != nil {
		return err
	}
	return c.Write(ctx, payload)
}

func write(w io.Writer, payload []byte) error {
	n, err := w.Write(payload)
	if err != nil {
		return errors.Wrap(err, "unable to send")
	}
	if n != len(payload) {
		return fmt.Errorf("sent %d of %d bytes", n, len(payload))
	}
	return nil
}

func printStatus(ctx context.Context) error {
	c, err := console.NewClient(*consoleURL)
	if err != nil {
		return err
	}
	s, err := c.Snapshot(ctx)
	if err != nil {
		return err
	}
	fmt.Println(s.Settings)
	fmt.Printf("pending: %s\n", s.Pending)
	fmt.Printf("frame:   %q\n", s.Frame)
	return nil
}
