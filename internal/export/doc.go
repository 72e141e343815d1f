// Package export turns a list of fonts into a saved file.
//
// # Orchestrator
//
// The Orchestrator decides what to produce from the list it is given:
//
//   - no fonts: nothing happens
//   - one font: the font file itself, named "{family}-{style}.{ext}"
//   - several fonts of one family: "{family}.zip"
//   - several families: "fonts.zip"
//
// Font binaries are fetched one at a time, in list order, through a
// FontDataSource. A single-font export fails when the fetch fails. In a
// batch each failed fetch is reported and skipped; the export fails only
// when nothing could be fetched or the archive cannot be built or saved.
//
// # Basic Usage
//
//	o := export.NewOrchestrator(index, saver, export.ZipArchiver{}, func(e export.ProgressEvent) {
//	    fmt.Println(e.Message)
//	})
//
//	res, err := o.Export(ctx, store.SelectedFonts())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("saved", res.Path)
//
// # Progress Tracking
//
// Progress is reported via a callback function that receives ProgressEvent:
//
//	type ProgressEvent struct {
//	    Message string
//	    Level   ProgressLevel // Info, Verbose, Warning, Error, Success
//	}
//
// GetProgress returns fetched, failed and total counts and may be polled
// from another goroutine while Export runs.
package export
