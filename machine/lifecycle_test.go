package machine_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"rvmm/loader"
	"rvmm/machine"
	"rvmm/riscv"
)

var _ = Describe("Machine lifecycle", func() {

	var exe *loader.Executable
	var m *machine.Machine

	entry := []byte{0x13, 0x00, 0x00, 0x00} // nop

	BeforeEach(func() {
		exe = &loader.Executable{
			Entry: 0x1000,
			Segments: []loader.Segment{
				{Addr: 0x1000, Data: entry},
			},
		}

		var err error
		m, err = machine.NewMachine(0x10000, exe, 4)
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		m.Dispose() // ignore result; some specs dispose themselves
	})

	It("brings every hart to the entry point", func() {
		Expect(m.NumHarts()).To(Equal(uint(4)))
		for i := uint(0); i < m.NumHarts(); i++ {
			hart := m.Hart(i)
			Expect(hart.Id).To(Equal(uint64(i)))
			Expect(hart.PC).To(Equal(uint64(0x1000)))
			Expect(hart.Privilege).To(Equal(riscv.PrivilegeMachine))
			Expect(hart.Mode).To(Equal(riscv.TranslationBare))
			Expect(hart.Machine()).To(BeIdenticalTo(m))
		}
	})

	It("resets harts uniformly, whatever their prior state", func() {
		hart := m.Hart(2)
		hart.PC = 0xdead
		hart.Cycle = 99
		hart.Regs[riscv.RegA0] = 7
		hart.Privilege = riscv.PrivilegeUser
		hart.Mode = riscv.TranslationSv39

		Expect(m.Reset(false)).To(Succeed())

		Expect(hart.Id).To(Equal(uint64(2)))
		Expect(hart.PC).To(Equal(uint64(0x1000)))
		Expect(hart.Cycle).To(BeZero())
		Expect(hart.Regs[riscv.RegA0]).To(BeZero())
		Expect(hart.Privilege).To(Equal(riscv.PrivilegeMachine))
		Expect(hart.Mode).To(Equal(riscv.TranslationBare))
	})

	It("reloads the executable on reset without clearing the rest", func() {
		memory := m.Memory()

		// Scribble over the segment and somewhere outside it.
		Expect(memory.Store8(0x1000, 0xff)).To(Succeed())
		Expect(memory.Store8(0x2000, 0x55)).To(Succeed())

		Expect(m.Reset(false)).To(Succeed())

		value, err := memory.Load8(0x1000)
		Expect(err).NotTo(HaveOccurred())
		Expect(value).To(Equal(entry[0]))

		// Non-segment memory survives a reset without clear.
		value, err = memory.Load8(0x2000)
		Expect(err).NotTo(HaveOccurred())
		Expect(value).To(Equal(uint8(0x55)))
	})

	It("wipes memory on a clearing reset but keeps the entry point executable", func() {
		memory := m.Memory()
		Expect(memory.Store8(0x2000, 0x55)).To(Succeed())

		Expect(m.Reset(true)).To(Succeed())

		value, err := memory.Load8(0x2000)
		Expect(err).NotTo(HaveOccurred())
		Expect(value).To(BeZero())

		value, err = memory.Load8(0x1000)
		Expect(err).NotTo(HaveOccurred())
		Expect(value).To(Equal(entry[0]))
	})

	It("round-trips data accesses through a hart", func() {
		hart := m.Hart(0)

		Expect(hart.StoreMemory32(0x3000, 0xcafebabe)).To(Succeed())
		value, err := hart.LoadMemory32(0x3000)
		Expect(err).NotTo(HaveOccurred())
		Expect(value).To(Equal(uint32(0xcafebabe)))
	})

	It("fails data accesses under an unimplemented translation mode", func() {
		hart := m.Hart(1)
		hart.Mode = riscv.TranslationSv39

		_, err := hart.LoadMemory64(0x3000)
		Expect(err).To(MatchError(machine.TranslationUnimplemented))

		Expect(hart.StoreMemory8(0x3000, 1)).
			To(MatchError(machine.TranslationUnimplemented))
	})

	It("propagates out-of-bounds accesses from harts", func() {
		hart := m.Hart(0)

		_, err := hart.LoadMemory64(0x10000 - 7)
		Expect(err).To(MatchError(machine.ExecutionOutOfBounds))
	})

	It("detects double dispose", func() {
		Expect(m.Dispose()).To(Succeed())
		Expect(m.Dispose()).To(MatchError(machine.MachineDisposed))
		Expect(m.Reset(false)).To(MatchError(machine.MachineDisposed))
	})

	It("dumps state without disturbing it", func() {
		m.Dump()
		Expect(m.Hart(0).PC).To(Equal(uint64(0x1000)))
	})

	It("panics when created without harts", func() {
		Expect(func() { machine.NewMachine(0x1000, exe, 0) }).To(Panic())
	})

	It("fails creation when a segment does not fit", func() {
		bad := &loader.Executable{
			Entry:    0,
			Segments: []loader.Segment{{Addr: 0x2000, Data: entry}},
		}
		_, err := machine.NewMachine(0x1000, bad, 1)
		Expect(err).To(MatchError(machine.ExecutionOutOfBounds))
	})
})
