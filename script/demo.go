// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

// RemovalDemo - removal of an absent key and of a node with one child
const RemovalDemo = `# remove node with two children
insert 10 1
insert 6 1
insert 16 1
insert 14 1
insert 18 1
insert 4 1
insert 2 1
insert 19 1
remove 212
remove 18
list
check
`

// BalanceDemo - height of an unbalanced tree before and after Balance
const BalanceDemo = `# balance
insert 1 one
insert 3 three
insert -4 minus four
insert 13 thirteen
insert -7 minus seven
insert -2 minus two
insert 4 four
insert 8 eight
insert 11 eleven
insert -8 minus eight
insert 5 five
insert -1 minus one
height
balance
height
list
check
`
