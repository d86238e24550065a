package uptake_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/umg-minai/simva/internal/physio"
	"github.com/umg-minai/simva/internal/uptake"
)

// Wash-in scenarios reproducing Cowles et al. (1973), Table 4 row 1:
// diethyl ether at an inspired pressure of 12, dt 0.1 min, 10 min total.
var _ = Describe("Cowles ether wash-in", func() {
	var sim *uptake.Simulator

	ether := uptake.Params{
		Conductance: physio.PerCompartment{4.0, 53.5756825532, 10.5405791489, 2.95404765957},
		Capacitance: physio.PerCompartment{75.8918246293, 116.158439716, 364.460425532, 386.491689233},
	}

	run := func(opts uptake.Options) uptake.Row {
		result, err := sim.Run(context.Background(), 12, opts)
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Len()).To(Equal(100))
		return result.Final()
	}

	BeforeEach(func() {
		sim = uptake.New(ether)
	})

	It("matches the published pressures after ten minutes", func() {
		final := run(uptake.DefaultOptions())

		Expect(final.Palv).To(BeNumerically("~", 1.73, 1.73*0.05))
		Expect(final.Pvrg).To(BeNumerically("~", 1.48, 1.48*0.05))
		Expect(final.Pmus).To(BeNumerically("~", 0.28, 0.28*0.05))
		Expect(final.Pfat).To(BeNumerically("~", 0.08, 0.08*0.05))
		Expect(final.Pcv).To(BeNumerically("~", 1.23, 1.23*0.05))

		Expect(final.Palv).To(BeNumerically("~", 1.73218637877, 1e-8))
		Expect(final.Pcv).To(BeNumerically("~", 1.23230466267, 1e-8))
	})

	It("lowers the alveolar pressure when the inspired gas is humidified", func() {
		opts := uptake.DefaultOptions()
		opts.Humidify = true
		final := run(opts)

		Expect(final.Pinsp).To(BeNumerically("~", 11.301761398, 1e-8))
		Expect(final.Palv).To(BeNumerically("~", 1.63, 1.63*0.05))
		Expect(final.Palv).To(BeNumerically("~", 1.63139642914, 1e-8))
	})

	It("raises the alveolar pressure under the concentration effect", func() {
		opts := uptake.DefaultOptions()
		opts.ConcentrationEffect = true
		final := run(opts)

		Expect(final.Palv).To(BeNumerically("~", 1.91, 1.91*0.05))
		Expect(final.Palv).To(BeNumerically("~", 1.91311839403, 1e-8))
	})

	It("mixes venous blood into the arterial pressure under a shunt", func() {
		opts := uptake.DefaultOptions()
		opts.ShuntFraction = 0.1
		final := run(opts)

		Expect(final.Palv).To(BeNumerically("~", 1.78, 1.78*0.05))
		Expect(final.Part).To(BeNumerically("~", 1.72, 1.72*0.05))
		Expect(final.Part).To(BeNumerically("<", final.Palv))
		Expect(final.Part).To(BeNumerically("~", 1.70541050016, 1e-8))
	})

	It("clears the tissue pressures under metabolism, leaving the lung alone", func() {
		base := run(uptake.DefaultOptions())

		opts := uptake.DefaultOptions()
		opts.MetabolismFraction = 0.2
		final := run(opts)

		Expect(final.Pvrg).To(BeNumerically("<", base.Pvrg))
		Expect(final.Pmus).To(BeNumerically("<", base.Pmus))
		Expect(final.Pfat).To(BeNumerically("<", base.Pfat))
		Expect(final.Pvrg).To(BeNumerically("~", 1.46783061443, 1e-8))
	})
})

var _ = Describe("other agents", func() {
	scenario := func(g, c physio.PerCompartment, palv, pcv float64) {
		sim := uptake.New(uptake.Params{Conductance: g, Capacitance: c})
		result, err := sim.Run(context.Background(), 8, uptake.DefaultOptions())
		Expect(err).NotTo(HaveOccurred())

		final := result.Final()
		Expect(final.Palv).To(BeNumerically("~", palv, 1e-8))
		Expect(final.Pcv).To(BeNumerically("~", pcv, 1e-8))
	}

	It("equilibrates nitrous oxide almost completely within ten minutes", func() {
		scenario(
			physio.PerCompartment{4, 2.05004471257, 0.403329598839, 0.113035046809},
			physio.PerCompartment{5.17397820761, 4.44474029658, 13.9458823985, 9.11428491296},
			6.98920011041, 5.56311438698,
		)
	})

	It("keeps halothane far from equilibrium within ten minutes", func() {
		scenario(
			physio.PerCompartment{4, 10.1838074275, 2.00358116054, 0.561513191489},
			physio.PerCompartment{16.3373952289, 41.6317343649, 234.941431335, 1192.20270148},
			3.39292683075, 2.11399191991,
		)
	})
})
