package domain

import "time"

// NetlistRecord is a synthesized netlist as kept in the netlist cache.
type NetlistRecord struct {
	Key       string    `msgpack:"key"`
	Entity    string    `msgpack:"entity"`
	Simulator string    `msgpack:"simulator"`
	Text      string    `msgpack:"text"`
	Checksum  uint64    `msgpack:"checksum"`
	CreatedAt time.Time `msgpack:"created_at"`
	// Cached is set when the record was served from the cache instead of synthesized.
	Cached bool `msgpack:"-"`
}
