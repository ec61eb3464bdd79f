package cartridge

// mapperCtor constructs a Mapper bound to the given cartridge's ROM data.
// Grounded on hw/mappers/all.go's `All map[uint16]MapperDesc` dispatch
// table: a map keyed by iNES mapper number rather than a single
// hard-coded branch, so the shape already supports more mappers even
// though only NROM is populated per the core's Non-goals.
type mapperCtor func(c *Cartridge) (Mapper, error)

var mapperTable = map[uint8]mapperCtor{
	0: newNROM,
}
