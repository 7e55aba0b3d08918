// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: lotscan/v1/extractor.proto

package lotscanv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type ExtractRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Document      []byte                 `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	MimeType      string                 `protobuf:"bytes,2,opt,name=mime_type,json=mimeType,proto3" json:"mime_type,omitempty"` // application/pdf or image/*
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractRequest) Reset() {
	*x = ExtractRequest{}
	mi := &file_lotscan_v1_extractor_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractRequest) ProtoMessage() {}

func (x *ExtractRequest) ProtoReflect() protoreflect.Message {
	mi := &file_lotscan_v1_extractor_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractRequest.ProtoReflect.Descriptor instead.
func (*ExtractRequest) Descriptor() ([]byte, []int) {
	return file_lotscan_v1_extractor_proto_rawDescGZIP(), []int{0}
}

func (x *ExtractRequest) GetDocument() []byte {
	if x != nil {
		return x.Document
	}
	return nil
}

func (x *ExtractRequest) GetMimeType() string {
	if x != nil {
		return x.MimeType
	}
	return ""
}

type Lot struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Number        *string                `protobuf:"bytes,1,opt,name=number,proto3,oneof" json:"number,omitempty"`
	Description   string                 `protobuf:"bytes,2,opt,name=description,proto3" json:"description,omitempty"`
	HammerPrice   *float64               `protobuf:"fixed64,3,opt,name=hammer_price,json=hammerPrice,proto3,oneof" json:"hammer_price,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Lot) Reset() {
	*x = Lot{}
	mi := &file_lotscan_v1_extractor_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Lot) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Lot) ProtoMessage() {}

func (x *Lot) ProtoReflect() protoreflect.Message {
	mi := &file_lotscan_v1_extractor_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Lot.ProtoReflect.Descriptor instead.
func (*Lot) Descriptor() ([]byte, []int) {
	return file_lotscan_v1_extractor_proto_rawDescGZIP(), []int{1}
}

func (x *Lot) GetNumber() string {
	if x != nil && x.Number != nil {
		return *x.Number
	}
	return ""
}

func (x *Lot) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *Lot) GetHammerPrice() float64 {
	if x != nil && x.HammerPrice != nil {
		return *x.HammerPrice
	}
	return 0
}

type BordereauResult struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	SaleRoom        *string                `protobuf:"bytes,1,opt,name=sale_room,json=saleRoom,proto3,oneof" json:"sale_room,omitempty"`
	SaleReference   *string                `protobuf:"bytes,2,opt,name=sale_reference,json=saleReference,proto3,oneof" json:"sale_reference,omitempty"`
	BordereauNumber *string                `protobuf:"bytes,3,opt,name=bordereau_number,json=bordereauNumber,proto3,oneof" json:"bordereau_number,omitempty"`
	SaleDate        *string                `protobuf:"bytes,4,opt,name=sale_date,json=saleDate,proto3,oneof" json:"sale_date,omitempty"` // YYYY-MM-DD
	Total           *float64               `protobuf:"fixed64,5,opt,name=total,proto3,oneof" json:"total,omitempty"`
	Lots            []*Lot                 `protobuf:"bytes,6,rep,name=lots,proto3" json:"lots,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *BordereauResult) Reset() {
	*x = BordereauResult{}
	mi := &file_lotscan_v1_extractor_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BordereauResult) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BordereauResult) ProtoMessage() {}

func (x *BordereauResult) ProtoReflect() protoreflect.Message {
	mi := &file_lotscan_v1_extractor_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BordereauResult.ProtoReflect.Descriptor instead.
func (*BordereauResult) Descriptor() ([]byte, []int) {
	return file_lotscan_v1_extractor_proto_rawDescGZIP(), []int{2}
}

func (x *BordereauResult) GetSaleRoom() string {
	if x != nil && x.SaleRoom != nil {
		return *x.SaleRoom
	}
	return ""
}

func (x *BordereauResult) GetSaleReference() string {
	if x != nil && x.SaleReference != nil {
		return *x.SaleReference
	}
	return ""
}

func (x *BordereauResult) GetBordereauNumber() string {
	if x != nil && x.BordereauNumber != nil {
		return *x.BordereauNumber
	}
	return ""
}

func (x *BordereauResult) GetSaleDate() string {
	if x != nil && x.SaleDate != nil {
		return *x.SaleDate
	}
	return ""
}

func (x *BordereauResult) GetTotal() float64 {
	if x != nil && x.Total != nil {
		return *x.Total
	}
	return 0
}

func (x *BordereauResult) GetLots() []*Lot {
	if x != nil {
		return x.Lots
	}
	return nil
}

type ExtractResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	Result        *BordereauResult       `protobuf:"bytes,2,opt,name=result,proto3" json:"result,omitempty"`
	RawText       string                 `protobuf:"bytes,3,opt,name=raw_text,json=rawText,proto3" json:"raw_text,omitempty"`
	Pages         int32                  `protobuf:"varint,4,opt,name=pages,proto3" json:"pages,omitempty"`
	Confidence    float64                `protobuf:"fixed64,5,opt,name=confidence,proto3" json:"confidence,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractResponse) Reset() {
	*x = ExtractResponse{}
	mi := &file_lotscan_v1_extractor_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractResponse) ProtoMessage() {}

func (x *ExtractResponse) ProtoReflect() protoreflect.Message {
	mi := &file_lotscan_v1_extractor_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractResponse.ProtoReflect.Descriptor instead.
func (*ExtractResponse) Descriptor() ([]byte, []int) {
	return file_lotscan_v1_extractor_proto_rawDescGZIP(), []int{3}
}

func (x *ExtractResponse) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *ExtractResponse) GetResult() *BordereauResult {
	if x != nil {
		return x.Result
	}
	return nil
}

func (x *ExtractResponse) GetRawText() string {
	if x != nil {
		return x.RawText
	}
	return ""
}

func (x *ExtractResponse) GetPages() int32 {
	if x != nil {
		return x.Pages
	}
	return 0
}

func (x *ExtractResponse) GetConfidence() float64 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

// Dimensions are centimeters.
type Dimensions struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Length        float64                `protobuf:"fixed64,1,opt,name=length,proto3" json:"length,omitempty"`
	Width         float64                `protobuf:"fixed64,2,opt,name=width,proto3" json:"width,omitempty"`
	Height        float64                `protobuf:"fixed64,3,opt,name=height,proto3" json:"height,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Dimensions) Reset() {
	*x = Dimensions{}
	mi := &file_lotscan_v1_extractor_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Dimensions) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Dimensions) ProtoMessage() {}

func (x *Dimensions) ProtoReflect() protoreflect.Message {
	mi := &file_lotscan_v1_extractor_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Dimensions.ProtoReflect.Descriptor instead.
func (*Dimensions) Descriptor() ([]byte, []int) {
	return file_lotscan_v1_extractor_proto_rawDescGZIP(), []int{4}
}

func (x *Dimensions) GetLength() float64 {
	if x != nil {
		return x.Length
	}
	return 0
}

func (x *Dimensions) GetWidth() float64 {
	if x != nil {
		return x.Width
	}
	return 0
}

func (x *Dimensions) GetHeight() float64 {
	if x != nil {
		return x.Height
	}
	return 0
}

type RecommendCartonRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Lots          []*Lot                 `protobuf:"bytes,1,rep,name=lots,proto3" json:"lots,omitempty"`
	Dimensions    []*Dimensions          `protobuf:"bytes,2,rep,name=dimensions,proto3" json:"dimensions,omitempty"` // one entry per lot
	WeightKg      float64                `protobuf:"fixed64,3,opt,name=weight_kg,json=weightKg,proto3" json:"weight_kg,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RecommendCartonRequest) Reset() {
	*x = RecommendCartonRequest{}
	mi := &file_lotscan_v1_extractor_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RecommendCartonRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RecommendCartonRequest) ProtoMessage() {}

func (x *RecommendCartonRequest) ProtoReflect() protoreflect.Message {
	mi := &file_lotscan_v1_extractor_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RecommendCartonRequest.ProtoReflect.Descriptor instead.
func (*RecommendCartonRequest) Descriptor() ([]byte, []int) {
	return file_lotscan_v1_extractor_proto_rawDescGZIP(), []int{5}
}

func (x *RecommendCartonRequest) GetLots() []*Lot {
	if x != nil {
		return x.Lots
	}
	return nil
}

func (x *RecommendCartonRequest) GetDimensions() []*Dimensions {
	if x != nil {
		return x.Dimensions
	}
	return nil
}

func (x *RecommendCartonRequest) GetWeightKg() float64 {
	if x != nil {
		return x.WeightKg
	}
	return 0
}

type CartonRecommendation struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Ref           string                 `protobuf:"bytes,1,opt,name=ref,proto3" json:"ref,omitempty"`
	Category      string                 `protobuf:"bytes,2,opt,name=category,proto3" json:"category,omitempty"`
	Inner         *Dimensions            `protobuf:"bytes,3,opt,name=inner,proto3" json:"inner,omitempty"`
	PriceHt       float64                `protobuf:"fixed64,4,opt,name=price_ht,json=priceHt,proto3" json:"price_ht,omitempty"`
	PriceTtc      float64                `protobuf:"fixed64,5,opt,name=price_ttc,json=priceTtc,proto3" json:"price_ttc,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CartonRecommendation) Reset() {
	*x = CartonRecommendation{}
	mi := &file_lotscan_v1_extractor_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CartonRecommendation) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CartonRecommendation) ProtoMessage() {}

func (x *CartonRecommendation) ProtoReflect() protoreflect.Message {
	mi := &file_lotscan_v1_extractor_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CartonRecommendation.ProtoReflect.Descriptor instead.
func (*CartonRecommendation) Descriptor() ([]byte, []int) {
	return file_lotscan_v1_extractor_proto_rawDescGZIP(), []int{6}
}

func (x *CartonRecommendation) GetRef() string {
	if x != nil {
		return x.Ref
	}
	return ""
}

func (x *CartonRecommendation) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *CartonRecommendation) GetInner() *Dimensions {
	if x != nil {
		return x.Inner
	}
	return nil
}

func (x *CartonRecommendation) GetPriceHt() float64 {
	if x != nil {
		return x.PriceHt
	}
	return 0
}

func (x *CartonRecommendation) GetPriceTtc() float64 {
	if x != nil {
		return x.PriceTtc
	}
	return 0
}

type RecommendCartonResponse struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// unset when no rule fits; that is a valid outcome, not an error
	Recommendation *CartonRecommendation `protobuf:"bytes,1,opt,name=recommendation,proto3" json:"recommendation,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *RecommendCartonResponse) Reset() {
	*x = RecommendCartonResponse{}
	mi := &file_lotscan_v1_extractor_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RecommendCartonResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RecommendCartonResponse) ProtoMessage() {}

func (x *RecommendCartonResponse) ProtoReflect() protoreflect.Message {
	mi := &file_lotscan_v1_extractor_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RecommendCartonResponse.ProtoReflect.Descriptor instead.
func (*RecommendCartonResponse) Descriptor() ([]byte, []int) {
	return file_lotscan_v1_extractor_proto_rawDescGZIP(), []int{7}
}

func (x *RecommendCartonResponse) GetRecommendation() *CartonRecommendation {
	if x != nil {
		return x.Recommendation
	}
	return nil
}

type ExportResultsRequest struct {
	state         protoimpl.MessageState       `protogen:"open.v1"`
	Items         []*ExportResultsRequest_Item `protobuf:"bytes,1,rep,name=items,proto3" json:"items,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportResultsRequest) Reset() {
	*x = ExportResultsRequest{}
	mi := &file_lotscan_v1_extractor_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportResultsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportResultsRequest) ProtoMessage() {}

func (x *ExportResultsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_lotscan_v1_extractor_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportResultsRequest.ProtoReflect.Descriptor instead.
func (*ExportResultsRequest) Descriptor() ([]byte, []int) {
	return file_lotscan_v1_extractor_proto_rawDescGZIP(), []int{8}
}

func (x *ExportResultsRequest) GetItems() []*ExportResultsRequest_Item {
	if x != nil {
		return x.Items
	}
	return nil
}

type ExportResultsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportResultsResponse) Reset() {
	*x = ExportResultsResponse{}
	mi := &file_lotscan_v1_extractor_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportResultsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportResultsResponse) ProtoMessage() {}

func (x *ExportResultsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_lotscan_v1_extractor_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportResultsResponse.ProtoReflect.Descriptor instead.
func (*ExportResultsResponse) Descriptor() ([]byte, []int) {
	return file_lotscan_v1_extractor_proto_rawDescGZIP(), []int{9}
}

func (x *ExportResultsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

type ExportResultsRequest_Item struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Source        string                 `protobuf:"bytes,1,opt,name=source,proto3" json:"source,omitempty"`
	Result        *BordereauResult       `protobuf:"bytes,2,opt,name=result,proto3" json:"result,omitempty"`
	Confidence    float64                `protobuf:"fixed64,3,opt,name=confidence,proto3" json:"confidence,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportResultsRequest_Item) Reset() {
	*x = ExportResultsRequest_Item{}
	mi := &file_lotscan_v1_extractor_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportResultsRequest_Item) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportResultsRequest_Item) ProtoMessage() {}

func (x *ExportResultsRequest_Item) ProtoReflect() protoreflect.Message {
	mi := &file_lotscan_v1_extractor_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportResultsRequest_Item.ProtoReflect.Descriptor instead.
func (*ExportResultsRequest_Item) Descriptor() ([]byte, []int) {
	return file_lotscan_v1_extractor_proto_rawDescGZIP(), []int{8, 0}
}

func (x *ExportResultsRequest_Item) GetSource() string {
	if x != nil {
		return x.Source
	}
	return ""
}

func (x *ExportResultsRequest_Item) GetResult() *BordereauResult {
	if x != nil {
		return x.Result
	}
	return nil
}

func (x *ExportResultsRequest_Item) GetConfidence() float64 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

var File_lotscan_v1_extractor_proto protoreflect.FileDescriptor

const file_lotscan_v1_extractor_proto_rawDesc = "" +
	"\n" +
	"\x1alotscan/v1/extractor.proto\x12\n" +
	"lotscan.v1\"I\n" +
	"\x0eExtractRequest\x12\x1a\n" +
	"\bdocument\x18\x01 \x01(\fR\bdocument\x12\x1b\n" +
	"\tmime_type\x18\x02 \x01(\tR\bmimeType\"\x88\x01\n" +
	"\x03Lot\x12\x1b\n" +
	"\x06number\x18\x01 \x01(\tH\x00R\x06number\x88\x01\x01\x12 \n" +
	"\vdescription\x18\x02 \x01(\tR\vdescription\x12&\n" +
	"\fhammer_price\x18\x03 \x01(\x01H\x01R\vhammerPrice\x88\x01\x01B\t\n" +
	"\a_numberB\x0f\n" +
	"\r_hammer_price\"\xbf\x02\n" +
	"\x0fBordereauResult\x12 \n" +
	"\tsale_room\x18\x01 \x01(\tH\x00R\bsaleRoom\x88\x01\x01\x12*\n" +
	"\x0esale_reference\x18\x02 \x01(\tH\x01R\rsaleReference\x88\x01\x01\x12.\n" +
	"\x10bordereau_number\x18\x03 \x01(\tH\x02R\x0fbordereauNumber\x88\x01\x01\x12 \n" +
	"\tsale_date\x18\x04 \x01(\tH\x03R\bsaleDate\x88\x01\x01\x12\x19\n" +
	"\x05total\x18\x05 \x01(\x01H\x04R\x05total\x88\x01\x01\x12#\n" +
	"\x04lots\x18\x06 \x03(\v2\x0f.lotscan.v1.LotR\x04lotsB\f\n" +
	"\n" +
	"_sale_roomB\x11\n" +
	"\x0f_sale_referenceB\x13\n" +
	"\x11_bordereau_numberB\f\n" +
	"\n" +
	"_sale_dateB\b\n" +
	"\x06_total\"\xae\x01\n" +
	"\x0fExtractResponse\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\x123\n" +
	"\x06result\x18\x02 \x01(\v2\x1b.lotscan.v1.BordereauResultR\x06result\x12\x19\n" +
	"\braw_text\x18\x03 \x01(\tR\arawText\x12\x14\n" +
	"\x05pages\x18\x04 \x01(\x05R\x05pages\x12\x1e\n" +
	"\n" +
	"confidence\x18\x05 \x01(\x01R\n" +
	"confidence\"R\n" +
	"\n" +
	"Dimensions\x12\x16\n" +
	"\x06length\x18\x01 \x01(\x01R\x06length\x12\x14\n" +
	"\x05width\x18\x02 \x01(\x01R\x05width\x12\x16\n" +
	"\x06height\x18\x03 \x01(\x01R\x06height\"\x92\x01\n" +
	"\x16RecommendCartonRequest\x12#\n" +
	"\x04lots\x18\x01 \x03(\v2\x0f.lotscan.v1.LotR\x04lots\x126\n" +
	"\n" +
	"dimensions\x18\x02 \x03(\v2\x16.lotscan.v1.DimensionsR\n" +
	"dimensions\x12\x1b\n" +
	"\tweight_kg\x18\x03 \x01(\x01R\bweightKg\"\xaa\x01\n" +
	"\x14CartonRecommendation\x12\x10\n" +
	"\x03ref\x18\x01 \x01(\tR\x03ref\x12\x1a\n" +
	"\bcategory\x18\x02 \x01(\tR\bcategory\x12,\n" +
	"\x05inner\x18\x03 \x01(\v2\x16.lotscan.v1.DimensionsR\x05inner\x12\x19\n" +
	"\bprice_ht\x18\x04 \x01(\x01R\apriceHt\x12\x1b\n" +
	"\tprice_ttc\x18\x05 \x01(\x01R\bpriceTtc\"c\n" +
	"\x17RecommendCartonResponse\x12H\n" +
	"\x0erecommendation\x18\x01 \x01(\v2 .lotscan.v1.CartonRecommendationR\x0erecommendation\"\xc8\x01\n" +
	"\x14ExportResultsRequest\x12;\n" +
	"\x05items\x18\x01 \x03(\v2%.lotscan.v1.ExportResultsRequest.ItemR\x05items\x1as\n" +
	"\x04Item\x12\x16\n" +
	"\x06source\x18\x01 \x01(\tR\x06source\x123\n" +
	"\x06result\x18\x02 \x01(\v2\x1b.lotscan.v1.BordereauResultR\x06result\x12\x1e\n" +
	"\n" +
	"confidence\x18\x03 \x01(\x01R\n" +
	"confidence\"+\n" +
	"\x15ExportResultsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2\x88\x02\n" +
	"\x10ExtractorService\x12B\n" +
	"\aExtract\x12\x1a.lotscan.v1.ExtractRequest\x1a\x1b.lotscan.v1.ExtractResponse\x12Z\n" +
	"\x0fRecommendCarton\x12\".lotscan.v1.RecommendCartonRequest\x1a#.lotscan.v1.RecommendCartonResponse\x12T\n" +
	"\rExportResults\x12 .lotscan.v1.ExportResultsRequest\x1a!.lotscan.v1.ExportResultsResponseB>Z<github.com/lucverdier/lotscan/gen/proto/lotscan/v1;lotscanv1b\x06proto3"

var (
	file_lotscan_v1_extractor_proto_rawDescOnce sync.Once
	file_lotscan_v1_extractor_proto_rawDescData []byte
)

func file_lotscan_v1_extractor_proto_rawDescGZIP() []byte {
	file_lotscan_v1_extractor_proto_rawDescOnce.Do(func() {
		file_lotscan_v1_extractor_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_lotscan_v1_extractor_proto_rawDesc), len(file_lotscan_v1_extractor_proto_rawDesc)))
	})
	return file_lotscan_v1_extractor_proto_rawDescData
}

var file_lotscan_v1_extractor_proto_msgTypes = make([]protoimpl.MessageInfo, 11)
var file_lotscan_v1_extractor_proto_goTypes = []any{
	(*ExtractRequest)(nil),            // 0: lotscan.v1.ExtractRequest
	(*Lot)(nil),                       // 1: lotscan.v1.Lot
	(*BordereauResult)(nil),           // 2: lotscan.v1.BordereauResult
	(*ExtractResponse)(nil),           // 3: lotscan.v1.ExtractResponse
	(*Dimensions)(nil),                // 4: lotscan.v1.Dimensions
	(*RecommendCartonRequest)(nil),    // 5: lotscan.v1.RecommendCartonRequest
	(*CartonRecommendation)(nil),      // 6: lotscan.v1.CartonRecommendation
	(*RecommendCartonResponse)(nil),   // 7: lotscan.v1.RecommendCartonResponse
	(*ExportResultsRequest)(nil),      // 8: lotscan.v1.ExportResultsRequest
	(*ExportResultsResponse)(nil),     // 9: lotscan.v1.ExportResultsResponse
	(*ExportResultsRequest_Item)(nil), // 10: lotscan.v1.ExportResultsRequest.Item
}
var file_lotscan_v1_extractor_proto_depIdxs = []int32{
	1,  // 0: lotscan.v1.BordereauResult.lots:type_name -> lotscan.v1.Lot
	2,  // 1: lotscan.v1.ExtractResponse.result:type_name -> lotscan.v1.BordereauResult
	1,  // 2: lotscan.v1.RecommendCartonRequest.lots:type_name -> lotscan.v1.Lot
	4,  // 3: lotscan.v1.RecommendCartonRequest.dimensions:type_name -> lotscan.v1.Dimensions
	4,  // 4: lotscan.v1.CartonRecommendation.inner:type_name -> lotscan.v1.Dimensions
	6,  // 5: lotscan.v1.RecommendCartonResponse.recommendation:type_name -> lotscan.v1.CartonRecommendation
	10, // 6: lotscan.v1.ExportResultsRequest.items:type_name -> lotscan.v1.ExportResultsRequest.Item
	2,  // 7: lotscan.v1.ExportResultsRequest.Item.result:type_name -> lotscan.v1.BordereauResult
	0,  // 8: lotscan.v1.ExtractorService.Extract:input_type -> lotscan.v1.ExtractRequest
	5,  // 9: lotscan.v1.ExtractorService.RecommendCarton:input_type -> lotscan.v1.RecommendCartonRequest
	8,  // 10: lotscan.v1.ExtractorService.ExportResults:input_type -> lotscan.v1.ExportResultsRequest
	3,  // 11: lotscan.v1.ExtractorService.Extract:output_type -> lotscan.v1.ExtractResponse
	7,  // 12: lotscan.v1.ExtractorService.RecommendCarton:output_type -> lotscan.v1.RecommendCartonResponse
	9,  // 13: lotscan.v1.ExtractorService.ExportResults:output_type -> lotscan.v1.ExportResultsResponse
	11, // [11:14] is the sub-list for method output_type
	8,  // [8:11] is the sub-list for method input_type
	8,  // [8:8] is the sub-list for extension type_name
	8,  // [8:8] is the sub-list for extension extendee
	0,  // [0:8] is the sub-list for field type_name
}

func init() { file_lotscan_v1_extractor_proto_init() }
func file_lotscan_v1_extractor_proto_init() {
	if File_lotscan_v1_extractor_proto != nil {
		return
	}
	file_lotscan_v1_extractor_proto_msgTypes[1].OneofWrappers = []any{}
	file_lotscan_v1_extractor_proto_msgTypes[2].OneofWrappers = []any{}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_lotscan_v1_extractor_proto_rawDesc), len(file_lotscan_v1_extractor_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   11,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_lotscan_v1_extractor_proto_goTypes,
		DependencyIndexes: file_lotscan_v1_extractor_proto_depIdxs,
		MessageInfos:      file_lotscan_v1_extractor_proto_msgTypes,
	}.Build()
	File_lotscan_v1_extractor_proto = out.File
	file_lotscan_v1_extractor_proto_goTypes = nil
	file_lotscan_v1_extractor_proto_depIdxs = nil
}
