package protocol

import (
	"encoding/json"
	"fmt"
)

// envelope is the outer JSON frame of every packet.
type envelope struct {
	Type        string          `json:"type"`
	RoomID      string          `json:"room_id,omitempty"`
	Reservation string          `json:"reservation,omitempty"`
	Data        json.RawMessage `json:"data,omitempty"`
}

// dataClass probes the class tag of a room payload.
type dataClass struct {
	Class string `json:"class"`
}

// DecodePacket parses one wire frame into a typed packet. An unknown
// packet type is a protocol violation; an unknown room data class is
// not, it becomes GenericData so future room chatter still reaches the
// handler.
func DecodePacket(raw []byte) (Packet, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("protocol: invalid frame: %w", err)
	}

	switch env.Type {
	case TypeJoined:
		return &Joined{RoomID: env.RoomID}, nil
	case TypeLeft:
		return &Left{RoomID: env.RoomID}, nil
	case TypePrepared:
		p := &GamePrepared{RoomID: env.RoomID}
		if len(env.Data) > 0 {
			if err := json.Unmarshal(env.Data, p); err != nil {
				return nil, fmt.Errorf("protocol: invalid prepared payload: %w", err)
			}
			p.RoomID = env.RoomID
		}
		return p, nil
	case TypeObserved:
		return &Observed{RoomID: env.RoomID}, nil
	case TypeRoom:
		data, err := decodeRoomData(env.Data)
		if err != nil {
			return nil, err
		}
		return &RoomMessage{RoomID: env.RoomID, Data: data}, nil
	default:
		return nil, fmt.Errorf("%w: unrecognized packet type %q", ErrProtocolViolation, env.Type)
	}
}

func decodeRoomData(raw json.RawMessage) (RoomData, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: room message without data", ErrProtocolViolation)
	}

	var probe dataClass
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, fmt.Errorf("protocol: invalid room payload: %w", err)
	}

	switch probe.Class {
	case ClassMoveRequest:
		return &MoveRequest{}, nil
	case ClassState:
		var st StatePayload
		if err := json.Unmarshal(raw, &st); err != nil {
			return nil, fmt.Errorf("protocol: invalid state payload: %w", err)
		}
		return &st, nil
	case ClassResult:
		var res Result
		if err := json.Unmarshal(raw, &res); err != nil {
			return nil, fmt.Errorf("protocol: invalid result payload: %w", err)
		}
		return &res, nil
	case ClassError:
		var ge GameError
		if err := json.Unmarshal(raw, &ge); err != nil {
			return nil, fmt.Errorf("protocol: invalid error payload: %w", err)
		}
		return &ge, nil
	default:
		return &GenericData{Class: probe.Class, Raw: append(json.RawMessage(nil), raw...)}, nil
	}
}

// EncodePacket serializes an outgoing packet into its wire frame.
func EncodePacket(p Packet) ([]byte, error) {
	switch m := p.(type) {
	case *Join:
		return json.Marshal(envelope{Type: TypeJoin})
	case *JoinRoom:
		return json.Marshal(envelope{Type: TypeJoinRoom, RoomID: m.RoomID})
	case *JoinPrepared:
		return json.Marshal(envelope{Type: TypeJoinPrepared, Reservation: m.Reservation})
	case *RoomMessage:
		data, err := encodeRoomData(m.Data)
		if err != nil {
			return nil, err
		}
		return json.Marshal(envelope{Type: TypeRoom, RoomID: m.RoomID, Data: data})
	default:
		return nil, fmt.Errorf("protocol: cannot encode packet %T", p)
	}
}

func encodeRoomData(d RoomData) (json.RawMessage, error) {
	var (
		class string
		body  any
	)
	switch m := d.(type) {
	case *MoveReply:
		class, body = ClassMove, m
	case *GenericData:
		return m.Raw, nil
	default:
		return nil, fmt.Errorf("protocol: cannot encode room data %T", d)
	}

	raw, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	// Splice the class tag into the payload object.
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	fields["class"] = json.RawMessage(fmt.Sprintf("%q", class))
	return json.Marshal(fields)
}
