// Package fixture loads UTF-8 text fixtures and checks the codec against
// Go's native decoding of the same text.
//
// A fixture directory holds plain text files. Each regular file becomes a
// Fixture whose Scalars come from converting the text to []rune, which the
// Go runtime decodes independently of package codec:
//
//	fixtures, err := fixture.Load("testdata/text")
//	if err != nil {
//	    return err
//	}
//	results, err := fixture.VerifyAll(ctx, fixtures)
//	for _, r := range results {
//	    if !r.Passed() {
//	        log.Printf("%s: %v", r.Name, r.Err)
//	    }
//	}
//
// Verify checks that decoding the file's bytes yields the native scalars,
// that encoding the native scalars yields the file's bytes, and that the
// scalars survive an encode/decode round trip.
package fixture
