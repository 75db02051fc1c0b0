package bolt

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func createDriver(t *testing.T) (*Driver, func()) {
	dir, err := ioutil.TempDir("", "photopilot")
	require.NoError(t, err, "could not create temp dir")

	driver := &Driver{}
	err = driver.Open(filepath.Join(dir, "test.db"))
	require.NoError(t, err, "could not open driver")

	return driver, func() {
		driver.Close()
		os.RemoveAll(dir)
	}
}

func TestDriver_OpenTwice(t *testing.T) {
	driver, clean := createDriver(t)
	defer clean()

	err := driver.Open("should-not-be-created.db")
	require.Error(t, err, "opening an open driver should fail")
}
