// Package fbs holds flatbuffers accessors and builders for the tables in
// footer.fbs.
package fbs

import (
	flatbuffers "github.com/google/flatbuffers/go"
)

type Postscript struct {
	_tab flatbuffers.Table
}

func GetRootAsPostscript(buf []byte, offset flatbuffers.UOffsetT) *Postscript {
	n := flatbuffers.GetUOffsetT(buf[offset:])
	x := &Postscript{}
	x.Init(buf, n+offset)
	return x
}

func (rcv *Postscript) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *Postscript) Table() flatbuffers.Table {
	return rcv._tab
}

func (rcv *Postscript) segment(slot flatbuffers.VOffsetT, obj *PostscriptSegment) *PostscriptSegment {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(slot))
	if o != 0 {
		x := rcv._tab.Indirect(o + rcv._tab.Pos)
		if obj == nil {
			obj = new(PostscriptSegment)
		}
		obj.Init(rcv._tab.Bytes, x)
		return obj
	}
	return nil
}

func (rcv *Postscript) Dtype(obj *PostscriptSegment) *PostscriptSegment {
	return rcv.segment(4, obj)
}

func (rcv *Postscript) Layout(obj *PostscriptSegment) *PostscriptSegment {
	return rcv.segment(6, obj)
}

func (rcv *Postscript) Statistics(obj *PostscriptSegment) *PostscriptSegment {
	return rcv.segment(8, obj)
}

func (rcv *Postscript) Footer(obj *PostscriptSegment) *PostscriptSegment {
	return rcv.segment(10, obj)
}

func PostscriptStart(builder *flatbuffers.Builder) {
	builder.StartObject(4)
}
func PostscriptAddDtype(builder *flatbuffers.Builder, dtype flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(0, flatbuffers.UOffsetT(dtype), 0)
}
func PostscriptAddLayout(builder *flatbuffers.Builder, layout flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(1, flatbuffers.UOffsetT(layout), 0)
}
func PostscriptAddStatistics(builder *flatbuffers.Builder, statistics flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(2, flatbuffers.UOffsetT(statistics), 0)
}
func PostscriptAddFooter(builder *flatbuffers.Builder, footer flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(3, flatbuffers.UOffsetT(footer), 0)
}
func PostscriptEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}

type PostscriptSegment struct {
	_tab flatbuffers.Table
}

func (rcv *PostscriptSegment) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *PostscriptSegment) Table() flatbuffers.Table {
	return rcv._tab
}

func (rcv *PostscriptSegment) Offset() uint64 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		return rcv._tab.GetUint64(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *PostscriptSegment) Length() uint32 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(6))
	if o != 0 {
		return rcv._tab.GetUint32(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *PostscriptSegment) AlignmentExponent() byte {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(8))
	if o != 0 {
		return rcv._tab.GetByte(o + rcv._tab.Pos)
	}
	return 0
}

func PostscriptSegmentStart(builder *flatbuffers.Builder) {
	builder.StartObject(3)
}
func PostscriptSegmentAddOffset(builder *flatbuffers.Builder, offset uint64) {
	builder.PrependUint64Slot(0, offset, 0)
}
func PostscriptSegmentAddLength(builder *flatbuffers.Builder, length uint32) {
	builder.PrependUint32Slot(1, length, 0)
}
func PostscriptSegmentAddAlignmentExponent(builder *flatbuffers.Builder, alignmentExponent byte) {
	builder.PrependByteSlot(2, alignmentExponent, 0)
}
func PostscriptSegmentEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}
