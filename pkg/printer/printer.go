package printer

import (
	"context"
	"fmt"
	"net"
	"os"
	"time"
)

// Printer sends raw ESC/POS bytes to a thermal printer.
type Printer interface {
	Print(ctx context.Context, data []byte) error
	IsConnected(ctx context.Context) bool
	Type() string
}

// Config selects and addresses a printer.
type Config struct {
	Type      string // "usb", "network" or "none"
	USBPath   string // e.g. /dev/usb/lp0
	Address   string // e.g. 192.168.1.100:9100
	CharWidth int
}

// New builds the printer described by cfg.
func New(cfg Config) (Printer, error) {
	switch cfg.Type {
	case "usb":
		if cfg.USBPath == "" {
			return nil, fmt.Errorf("printer: usb path is required for usb printers")
		}
		return &usbPrinter{path: cfg.USBPath}, nil
	case "network":
		if cfg.Address == "" {
			return nil, fmt.Errorf("printer: address is required for network printers")
		}
		return &networkPrinter{address: cfg.Address, dialTimeout: 5 * time.Second, writeTimeout: 10 * time.Second}, nil
	case "none", "":
		return nullPrinter{}, nil
	default:
		return nil, fmt.Errorf("printer: unknown printer type %q (use usb, network, or none)", cfg.Type)
	}
}

// usbPrinter writes to a character device, opening it per job.
type usbPrinter struct {
	path string
}

func (p *usbPrinter) Print(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f, err := os.OpenFile(p.path, os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("printer: open %s: %w", p.path, err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("printer: write %s: %w", p.path, err)
	}
	return nil
}

func (p *usbPrinter) IsConnected(context.Context) bool {
	_, err := os.Stat(p.path)
	return err == nil
}

func (p *usbPrinter) Type() string { return "usb" }

// networkPrinter speaks raw TCP (port 9100), one connection per job.
type networkPrinter struct {
	address      string
	dialTimeout  time.Duration
	writeTimeout time.Duration
}

func (p *networkPrinter) dial(ctx context.Context, timeout time.Duration) (net.Conn, error) {
	dialer := net.Dialer{Timeout: timeout}
	return dialer.DialContext(ctx, "tcp", p.address)
}

func (p *networkPrinter) Print(ctx context.Context, data []byte) error {
	conn, err := p.dial(ctx, p.dialTimeout)
	if err != nil {
		return fmt.Errorf("printer: connect %s: %w", p.address, err)
	}
	defer conn.Close()

	_ = conn.SetWriteDeadline(time.Now().Add(p.writeTimeout))
	if _, err := conn.Write(data); err != nil {
		return fmt.Errorf("printer: write %s: %w", p.address, err)
	}
	return nil
}

func (p *networkPrinter) IsConnected(ctx context.Context) bool {
	conn, err := p.dial(ctx, 2*time.Second)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}

func (p *networkPrinter) Type() string { return "network" }

// nullPrinter discards jobs when no hardware is configured.
type nullPrinter struct{}

func (nullPrinter) Print(context.Context, []byte) error { return nil }
func (nullPrinter) IsConnected(context.Context) bool    { return false }
func (nullPrinter) Type() string                        { return "none" }
