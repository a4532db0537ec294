package handler

import (
	"strconv"
	"strings"

	"github.com/opendirectory/providerdir/internal/errs"
)

// parsePageRange splits a "start-amount" path segment (e.g. "0-25") into its
// two integer parts. Both must be non-negative integers.
func parsePageRange(rng string) (start, amount int, err error) {
	first, second, found := strings.Cut(rng, "-")
	if !found {
		return 0, 0, errs.NewBadRequestError(
			"Page range must look like start-amount, e.g. 0-25", true, nil, nil, nil)
	}

	start, err = strconv.Atoi(first)
	if err != nil || start < 0 {
		return 0, 0, errs.NewBadRequestError("Page start must be a non-negative integer", true, nil, nil, nil)
	}

	amount, err = strconv.Atoi(second)
	if err != nil || amount < 0 {
		return 0, 0, errs.NewBadRequestError("Page amount must be a non-negative integer", true, nil, nil, nil)
	}

	return start, amount, nil
}
