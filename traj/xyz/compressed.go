/*
 * compressed.go, part of nndist
 *
 * Copyright 2012 Raul Mera Adasme <rmera_changeforat_chem-dot-helsinki-dot-fi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License  as published by
 * the Free Software Foundation; either version 2.1 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General Public License
 * along with this program; if not, write to the Free Software
 * Foundation, Inc., 51 Franklin Street, Fifth Floor, Boston,
 * MA 02110-1301, USA.
 */

package xyz

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

//source closes both the decompressor and the file under it.
type source struct {
	io.Reader
	closers []io.Closer
}

func (s *source) Close() error {
	var err error
	for _, c := range s.closers {
		if e := c.Close(); e != nil && err == nil {
			err = e
		}
	}
	return err
}

//prepSource takes a filename and format string, opens the file and returns an object that will
//read data from the file, either 'as is' or decompressing first, depending on the format string.
//If the format string is empty, it will try to deduce it from the file extension: .gz (gzip)
//and .zst or .zstd (z-standard) are decompressed, anything else is read as plain text.
func prepSource(fname string, format string) (io.ReadCloser, error) {
	fk := format
	if fk == "" {
		fk = strings.TrimPrefix(strings.ToLower(filepath.Ext(fname)), ".")
	}
	fhandle, err := os.Open(fname)
	if err != nil {
		return nil, Error{UnableToOpen + ": " + err.Error(), fname, []string{"os.Open", "prepSource"}, true}
	}
	reader := bufio.NewReader(fhandle)
	ret := &source{closers: []io.Closer{fhandle}}
	switch fk {
	case "gz":
		gz, err := gzip.NewReader(reader)
		if err != nil {
			fhandle.Close()
			return nil, Error{ReadError + ": " + err.Error(), fname, []string{"gzip.NewReader", "prepSource"}, true}
		}
		ret.Reader = gz
		ret.closers = append([]io.Closer{gz}, ret.closers...)
	case "zst", "zstd":
		zs, err := zstd.NewReader(reader)
		if err != nil {
			fhandle.Close()
			return nil, Error{ReadError + ": " + err.Error(), fname, []string{"zstd.NewReader", "prepSource"}, true}
		}
		rc := zs.IOReadCloser()
		ret.Reader = rc
		ret.closers = append([]io.Closer{rc}, ret.closers...)
	default:
		ret.Reader = reader
	}
	return ret, nil
}
