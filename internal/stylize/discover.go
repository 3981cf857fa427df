package stylize

import (
	"errors"
	"fmt"
	"time"

	"github.com/hashicorp/mdns"
)

const serviceType = "_pixelpad-styler._tcp"

// ErrNoService is returned when discovery times out without finding a
// styler on the local network.
var ErrNoService = errors.New("stylize: no styler service found")

// Discover browses the LAN for a styler service and returns a websocket
// endpoint for the first instance found.
func Discover(timeout time.Duration) (string, error) {
	params := mdns.DefaultParams(serviceType)
	params.Timeout = timeout
	return discover(params, mdns.Query)
}

// discover runs query and drains its entries channel. The drain goroutine
// signals completion so every entry the query delivered is seen before the
// final check; entries may still be in flight when the query returns.
func discover(params *mdns.QueryParam, query func(*mdns.QueryParam) error) (string, error) {
	entries := make(chan *mdns.ServiceEntry, 8)
	params.Entries = entries

	found := make(chan string, 1)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for e := range entries {
			if e.AddrV4 == nil || e.Port == 0 {
				continue
			}
			select {
			case found <- fmt.Sprintf("ws://%s:%d/stylize", e.AddrV4.String(), e.Port):
			default:
			}
		}
	}()

	err := query(params)
	close(entries)
	<-done
	if err != nil {
		return "", fmt.Errorf("stylize: mdns query: %w", err)
	}

	select {
	case endpoint := <-found:
		return endpoint, nil
	default:
		return "", ErrNoService
	}
}
