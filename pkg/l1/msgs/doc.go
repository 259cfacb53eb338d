// Package msgs provides L1 protocol support and the generic message schemas.
package msgs

// L1 protocol is communicated between an L1 controller and L2 consumers.
// Every packet is a Typed envelope:
//
//	field 1  type_id   varint  kind | group | reply | id
//	field 2  sequence  varint  correlates a command with its reply
//	field 3  message   bytes   the encoded message
//
// Producer: L1 controller
// Consumer: L2 brain, monitors
