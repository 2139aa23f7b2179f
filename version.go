package hufftree

// Version is the library version reported by cmd/huffdump.
const Version = "1.0.0"
