// SPDX-License-Identifier: Unlicense OR MIT

package gpu

import "golang.org/x/sys/windows"

func threadID() int {
	return int(windows.GetCurrentThreadId())
}
