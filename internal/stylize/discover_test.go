package stylize

import (
	"errors"
	"net"
	"testing"

	"github.com/hashicorp/mdns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscoverSeesEntryDeliveredAtQueryReturn(t *testing.T) {
	params := mdns.DefaultParams(serviceType)
	query := func(p *mdns.QueryParam) error {
		// An entry sitting in the buffered channel when the query
		// returns must still be picked up.
		p.Entries <- &mdns.ServiceEntry{AddrV4: net.IPv4(192, 168, 1, 7), Port: 9000}
		return nil
	}

	endpoint, err := discover(params, query)
	require.NoError(t, err)
	assert.Equal(t, "ws://192.168.1.7:9000/stylize", endpoint)
}

func TestDiscoverFirstEntryWins(t *testing.T) {
	params := mdns.DefaultParams(serviceType)
	query := func(p *mdns.QueryParam) error {
		p.Entries <- &mdns.ServiceEntry{AddrV4: net.IPv4(10, 0, 0, 1), Port: 9000}
		p.Entries <- &mdns.ServiceEntry{AddrV4: net.IPv4(10, 0, 0, 2), Port: 9001}
		return nil
	}

	endpoint, err := discover(params, query)
	require.NoError(t, err)
	assert.Equal(t, "ws://10.0.0.1:9000/stylize", endpoint)
}

func TestDiscoverSkipsUnusableEntries(t *testing.T) {
	params := mdns.DefaultParams(serviceType)
	query := func(p *mdns.QueryParam) error {
		p.Entries <- &mdns.ServiceEntry{Port: 9000}                        // no address
		p.Entries <- &mdns.ServiceEntry{AddrV4: net.IPv4(10, 0, 0, 3)}    // no port
		p.Entries <- &mdns.ServiceEntry{AddrV4: net.IPv4(10, 0, 0, 4), Port: 9002}
		return nil
	}

	endpoint, err := discover(params, query)
	require.NoError(t, err)
	assert.Equal(t, "ws://10.0.0.4:9002/stylize", endpoint)
}

func TestDiscoverNoEntries(t *testing.T) {
	params := mdns.DefaultParams(serviceType)
	query := func(*mdns.QueryParam) error { return nil }

	_, err := discover(params, query)
	assert.ErrorIs(t, err, ErrNoService)
}

func TestDiscoverQueryError(t *testing.T) {
	params := mdns.DefaultParams(serviceType)
	boom := errors.New("multicast unavailable")
	query := func(*mdns.QueryParam) error { return boom }

	_, err := discover(params, query)
	assert.ErrorIs(t, err, boom)
}
