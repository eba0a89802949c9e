// Package riscv holds the ISA-level constants shared by the system and
// user execution models: register indices, privilege levels and address
// translation modes.
package riscv

// NumRegisters is the size of the integer register file.
const NumRegisters = 32

// General-purpose register indices, by ABI name.
//
// Register 0 (zero) is architecturally hard-wired to zero; the register
// file itself treats it as plain storage and the instruction executor is
// responsible for the read-as-zero semantics.
const (
	RegZero = 0
	RegRA   = 1
	RegSP   = 2
	RegGP   = 3
	RegTP   = 4
	RegT0   = 5
	RegT1   = 6
	RegT2   = 7
	RegFP   = 8
	RegS1   = 9
	RegA0   = 10
	RegA1   = 11
	RegA2   = 12
	RegA3   = 13
	RegA4   = 14
	RegA5   = 15
	RegA6   = 16
	RegA7   = 17
)

// Privilege is a hart privilege level.
type Privilege uint8

const (
	PrivilegeUser       Privilege = 0
	PrivilegeSupervisor Privilege = 1
	PrivilegeMachine    Privilege = 3
)

func (p Privilege) String() string {
	switch p {
	case PrivilegeUser:
		return "user"
	case PrivilegeSupervisor:
		return "supervisor"
	case PrivilegeMachine:
		return "machine"
	}
	return "invalid"
}

// TranslationMode selects how a hart's virtual addresses are converted
// to guest-physical addresses. Only bare (identity) translation is
// implemented; the paged modes are reserved dispatch points.
type TranslationMode uint8

const (
	TranslationBare TranslationMode = 0
	TranslationSv39 TranslationMode = 8
	TranslationSv48 TranslationMode = 9
	TranslationSv57 TranslationMode = 10
)

func (m TranslationMode) String() string {
	switch m {
	case TranslationBare:
		return "bare"
	case TranslationSv39:
		return "sv39"
	case TranslationSv48:
		return "sv48"
	case TranslationSv57:
		return "sv57"
	}
	return "invalid"
}
