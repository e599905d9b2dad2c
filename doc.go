// Package simpleutf8 is a bidirectional UTF-8 codec.
//
// It converts Unicode scalar values to UTF-8 bytes and back, rejecting
// malformed input with an error that names the fault and its position in
// the original input.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	simpleutf8/         Root package with the Decoder and Encoder interfaces
//	├── codec/          Decode and Encode, the codec itself
//	├── errors/         Structured error types shared by all packages
//	├── fixture/        Text fixtures cross-checked against native decoding
//	├── config/         YAML configuration for the command line tool
//	└── cmd/utf8/       Command line tool and interactive viewer
//
// # Quick Start
//
//	scalars, err := codec.Decode(data)
//	if err != nil {
//	    var de *codec.DecodeError
//	    if errors.As(err, &de) {
//	        log.Fatalf("byte %d: %s", de.Index, de.Kind)
//	    }
//	}
//
//	data, err = codec.Encode(scalars)
//
// # Validation Policy
//
// The decoder checks structure only. Overlong encodings and surrogate code
// points decode without error, and the encoder accepts every value below
// 0x200000. There is no replacement character: malformed input always fails.
//
// # Thread Safety
//
// Every function is stateless and safe for concurrent use.
package simpleutf8
