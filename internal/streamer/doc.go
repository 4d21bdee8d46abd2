// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package streamer copies sources to an output writer one line at a time.
//
// Each source is read to exhaustion and every line is written as soon as it
// is read, with its original terminator. A file that cannot be opened or read
// produces a single diagnostic line of the form
//
//	<program>: <filename>: <error description>
//
// and is abandoned; the remaining sources are still processed. Read errors on
// standard input are treated as the end of the stream. A failure to write the
// output stops the whole run.
package streamer
