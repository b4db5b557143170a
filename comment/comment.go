// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package comment

import (
	"fmt"
	"io"
	"strings"
)

// DeletedText - replaces the text of a removed comment
const DeletedText = "This comment has been deleted."

// indent per reply level
const indent = "    "

// Comment - one comment and its replies
type Comment struct {
	Text      string
	Author    string
	Replies   []*Comment
	IsDeleted bool
}

// New - create a comment with no replies
func New(text string, author string) *Comment {
	return &Comment{
		Text:    text,
		Author:  author,
		Replies: []*Comment{},
	}
}

// AddReply - append a reply, replies keep their insertion order
func (c *Comment) AddReply(reply *Comment) {
	c.Replies = append(c.Replies, reply)
}

// Remove - mark the comment as deleted, replies are kept
func (c *Comment) Remove() {
	c.Text = DeletedText
	c.IsDeleted = true
}

// Count - number of comments in this thread including c
func (c *Comment) Count() int {
	n := 1
	for _, r := range c.Replies {
		n += r.Count()
	}
	return n
}

// Display - write the thread, one comment per line indented by depth
func (c *Comment) Display(w io.Writer) error {
	return c.display(w, 0)
}

// String - the Display output as a string
func (c *Comment) String() string {
	var b strings.Builder
	_ = c.display(&b, 0)
	return b.String()
}

func (c *Comment) display(w io.Writer, level int) error {
	prefix := strings.Repeat(indent, level)
	var err error
	if c.IsDeleted {
		_, err = fmt.Fprintf(w, "%s%s\n", prefix, c.Text)
	} else {
		_, err = fmt.Fprintf(w, "%s%s: %s\n", prefix, c.Author, c.Text)
	}
	if nil != err {
		return err
	}
	for _, r := range c.Replies {
		if err := r.display(w, level+1); nil != err {
			return err
		}
	}
	return nil
}
