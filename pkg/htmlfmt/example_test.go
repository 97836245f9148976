// Copyright 2024-2026 Fabian Fuchs
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package htmlfmt_test

import (
	"fmt"

	"github.com/fuchs-fabian/matrix-notify/pkg/htmlfmt"
)

func ExampleTag_Format() {
	fmt.Println(htmlfmt.H1.Format("Backup finished"))
	fmt.Println(htmlfmt.Bold.Format("3 warnings"))
	// Output:
	// <h1>Backup finished</h1>
	// <strong>3 warnings</strong>
}

func ExampleReplaceSpacesAndNewlines() {
	fmt.Println(htmlfmt.ReplaceSpacesAndNewlines("disk:  92%\nswap:  14%"))
	// Output: disk: &nbsp;92%<br>swap: &nbsp;14%
}
