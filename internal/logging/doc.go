// Package logging holds the process-wide structured logger.
//
// Libraries in this module call Logger() and never configure output
// themselves; the commands install a handler at startup:
//
//	logging.SetLogger(logging.NewTextLogger(os.Stderr, settings.LogLevel))
package logging
