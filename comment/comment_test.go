// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package comment_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/comment"
)

func TestThread(t *testing.T) {
	root := comment.New("What a great book!", "Bodya")

	reply1 := comment.New("The book is a complete disappointment :(", "Andriy")
	reply2 := comment.New("What is so great about it?", "Maryna")

	root.AddReply(reply1)
	root.AddReply(reply2)

	reply11 := comment.New("Not a book, just a waste of paper...", "Serhiy")
	reply1.AddReply(reply11)

	reply1.Remove()

	expected := "Bodya: What a great book!\n" +
		"    " + comment.DeletedText + "\n" +
		"        Serhiy: Not a book, just a waste of paper...\n" +
		"    Maryna: What is so great about it?\n"

	var b bytes.Buffer
	err := root.Display(&b)
	assert.NoError(t, err, "display error")
	assert.Equal(t, expected, b.String(), "wrong display")
	assert.Equal(t, expected, root.String(), "wrong string")

	assert.True(t, reply1.IsDeleted, "not marked deleted")
	assert.Equal(t, 1, len(reply1.Replies), "replies lost on remove")
	assert.Equal(t, 4, root.Count(), "wrong count")
}

func TestRemoveTwice(t *testing.T) {
	c := comment.New("text", "author")
	c.Remove()
	c.Remove()

	assert.True(t, c.IsDeleted, "not marked deleted")
	assert.Equal(t, comment.DeletedText+"\n", c.String(), "wrong display")
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) {
	return 0, errors.New("write failed")
}

func TestDisplayError(t *testing.T) {
	c := comment.New("text", "author")
	c.AddReply(comment.New("reply", "other"))

	err := c.Display(failWriter{})
	assert.Error(t, err, "write error not returned")
}
