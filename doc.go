// Package docindex is the composition root for a personal document catalog.
//
// A catalog is a single JSON file listing documents (books, papers, slides,
// course texts, posters) with their authors, publication data, reading
// status, tags and links to the document and to notes about it. The core
// domain lives in pkg/core, the file format in pkg/adapters/fs and display
// formatting in pkg/view.
//
// Loading is strict: a file with unknown fields, wrong types or unknown
// enum names is rejected, and a well-formed file is then checked against
// the catalog rules, reporting every problem at once. Saving always writes
// the same canonical layout, so a load followed by a save is a no-op.
//
// Usage:
//
//	svc, err := docindex.New("./index.json",
//		docindex.WithLogger(logger),
//	)
//
//	idx, err := svc.Load(ctx)
//	if errors.Is(err, core.ErrValidation) {
//		for _, msg := range core.ValidationMessages(err) {
//			fmt.Println(msg)
//		}
//	}
package docindex
