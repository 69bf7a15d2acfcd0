package util

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

func ReadJsonFile(filename string, msg any) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return errors.Wrapf(err, "reading %s", filename)
	}
	if err = json.Unmarshal(data, msg); err != nil {
		return errors.Wrapf(err, "decoding %s", filename)
	}
	return nil
}

func DoesFileExist(filename string) bool {
	info, err := os.Stat(filename)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

func Clamp(value, minValue, maxValue int) int {
	if value < minValue {
		return minValue
	}
	if value > maxValue {
		return maxValue
	}
	return value
}
