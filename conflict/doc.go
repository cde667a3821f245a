// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package conflict reconciles declarations that several plugins contributed
// under the same name.
//
// For every namespace, members are grouped by identity. A group whose first
// member accepts all others is merged into it. Any other group is a conflict
// and is handed to a [Chooser], which keeps one candidate or drops them all.
// Namespaces are then resolved recursively, so members brought together by a
// namespace merge are reconciled too.
//
// Mergeability is decided for the group as a whole: the first member must
// accept every other member at once. Groups where only some pairs are
// compatible are treated as conflicts.
package conflict
