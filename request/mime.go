/*
 * MIT License
 *
 * Copyright (c) 2024 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

package request

import (
	"os"

	liberr "github.com/nabbar/golib/errors"
)

// MimeField is one field of a mime form request: a name plus either an
// inline value or a filesystem path whose content is uploaded.
type MimeField struct {
	name   string
	value  string
	path   string
	isFile bool
}

// NewMimeField creates a mime field carrying an inline value.
func NewMimeField(name, value string) MimeField {
	return MimeField{
		name:  name,
		value: value,
	}
}

// NewMimeFieldFile creates a mime field carrying the content of the given
// file. It fails if the path does not exist on disk.
func NewMimeFieldFile(name, path string) (MimeField, liberr.Error) {
	if _, err := os.Stat(path); err != nil {
		return MimeField{}, ErrorMimeFileNotFound.Error(err)
	}

	return MimeField{
		name:   name,
		path:   path,
		isFile: true,
	}, nil
}

// Name returns the field name.
func (m MimeField) Name() string {
	return m.name
}

// Value returns the inline value, empty for a file field.
func (m MimeField) Value() string {
	return m.value
}

// FilePath returns the file path, empty for an inline field.
func (m MimeField) FilePath() string {
	return m.path
}

// IsFile returns true when the field carries a file path.
func (m MimeField) IsFile() bool {
	return m.isFile
}
