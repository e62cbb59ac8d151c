// Package encoding provides the primitive decoders of the MMKV store format.
//
// MMKV stores are built from two primitives:
//
//   - Varint: an unsigned integer written as base-128 groups, least significant
//     group first. The high bit of each byte is a continuation flag.
//   - Container: a varint length followed by exactly that many content bytes.
//
// For example the bytes 0xff 0x81 0x01 encode 0x7f | 0x01<<7 | 0x01<<14 = 16639,
// and 0x03 'A' 'B' 'C' is a container holding "ABC".
//
// All decoders take a byte slice and return the unread remainder together with
// the decoded item. Returned spans alias the input; nothing is copied until a
// span is converted to a string. There are no writers.
//
// Every function here is a pure function of its input and is safe for
// concurrent use on distinct or shared read-only buffers.
package encoding
