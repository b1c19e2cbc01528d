// This file is part of Fish'n'CHIPS.
//
// Fish'n'CHIPS is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Fish'n'CHIPS is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Fish'n'CHIPS.  If not, see <https://www.gnu.org/licenses/>.

package romloader

import (
	"crypto/sha1"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/Barbatrou/fish-n-chips/curated"
	"github.com/Barbatrou/fish-n-chips/hardware/memory"
	"github.com/Barbatrou/fish-n-chips/logger"
)

// ProgramTooLarge is the error returned by Load() when the program would
// not fit in the memory available above the load offset.
const ProgramTooLarge = "program too large: %d bytes (maximum %d)"

// Loader is used to specify the program to use when Attach()ing to the
// machine.
type Loader struct {
	// filename of program to load
	Filename string

	// expected hash of the loaded program. empty string indicates that
	// the hash is unknown and need not be validated. after a load
	// operation the value will be the hash of the loaded data
	Hash string

	// copy of the loaded data
	Data []byte
}

// FileExtensions is the list of file extensions that are recognised by the
// romloader package.
var FileExtensions = [...]string{".ch8", ".c8", ".rom", ".bin"}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: filename,
	}
}

// ShortName returns a shortened version of the Loader filename.
func (ld Loader) ShortName() string {
	shortName := path.Base(ld.Filename)
	shortName = strings.TrimSuffix(shortName, path.Ext(ld.Filename))
	return shortName
}

// HasLoaded returns true if Load() has been successfully called.
func (ld Loader) HasLoaded() bool {
	return len(ld.Data) > 0
}

// Load the program data. Loader filenames with a valid schema will use
// that method to load the data. Currently supported schemes are HTTP and
// local files.
//
// A loader whose Data field is already populated does not touch the
// filesystem or the network but is still validated.
func (ld *Loader) Load() error {
	if len(ld.Data) == 0 {
		scheme := "file"

		url, err := url.Parse(ld.Filename)
		if err == nil {
			scheme = url.Scheme
		}

		switch scheme {
		case "http":
			fallthrough
		case "https":
			resp, err := http.Get(ld.Filename)
			if err != nil {
				return curated.Errorf("romloader: %v", err)
			}
			defer resp.Body.Close()

			ld.Data, err = ioutil.ReadAll(resp.Body)
			if err != nil {
				return curated.Errorf("romloader: %v", err)
			}

		case "file":
			fallthrough

		case "":
			f, err := os.Open(ld.Filename)
			if err != nil {
				return curated.Errorf("romloader: %v", err)
			}
			defer f.Close()

			// get file info. not using Stat() on the file handle because
			// the windows version (when running under wine) does not
			// handle that
			cfi, err := os.Stat(ld.Filename)
			if err != nil {
				return curated.Errorf("romloader: %v", err)
			}
			size := cfi.Size()

			ld.Data = make([]byte, size)
			_, err = f.Read(ld.Data)
			if err != nil {
				return curated.Errorf("romloader: %v", err)
			}

		default:
			return curated.Errorf("romloader: %v", fmt.Sprintf("unsupported URL scheme (%s)", scheme))
		}
	}

	// the program must fit in the memory above the load offset. checking
	// here means a too-large program never reaches the machine
	if len(ld.Data) > memory.MaxProgramSize {
		return curated.Errorf(ProgramTooLarge, len(ld.Data), memory.MaxProgramSize)
	}

	// generate hash
	hash := fmt.Sprintf("%x", sha1.Sum(ld.Data))

	// check for hash consistency
	if ld.Hash != "" && ld.Hash != hash {
		return curated.Errorf("romloader: %v", "unexpected hash value")
	}

	ld.Hash = hash

	logger.Logf("romloader", "%s (%d bytes) %s", ld.ShortName(), len(ld.Data), ld.Hash)

	return nil
}
