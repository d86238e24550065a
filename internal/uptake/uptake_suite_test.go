package uptake_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestUptake(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Uptake Suite")
}
